// Package commands defines the lockbox CLI: session lifecycle (signup,
// login, logout, status), credential CRUD (add, list, show, update, rm),
// and a local password generator.
package commands
