// Package store persists the small amount of client-side state between
// CLI invocations: the logged-in account and a per-user cache of the
// last credential listing. Secret fields inside cached credentials stay
// sealed; nothing plaintext is written to disk.
package store
