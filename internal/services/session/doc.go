// Package session owns the per-login symmetric key and everything that
// touches it.
//
// Service derives the key once per login from (username, master password,
// per-user salt), holds it only in memory, and wipes it on teardown. The
// raw encrypt/decrypt primitives are unexported; Codec, in this package,
// is the only way the rest of the client can use the key, and it only
// hands out sealed fields, never key material.
package session
