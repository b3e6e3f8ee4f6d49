// Package account orchestrates the session lifecycle: it authenticates
// against the backend, derives the session key from the returned salt,
// persists the logged-in account, and tears everything down on logout.
package account
