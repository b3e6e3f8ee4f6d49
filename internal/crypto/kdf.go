package crypto

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// KeySize is the session key length in bytes (256-bit).
	KeySize = chacha20poly1305.KeySize
	// SaltSize is the length of the per-user salt issued at signup.
	SaltSize = 16
)

// Argon2id cost parameters. Fixed: changing any of them changes every
// derived key and makes existing ciphertexts unreadable.
const (
	argonTime    = 2
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

// saltSeparator sits between the raw salt and the username in the
// binding hash, matching the stored-data format.
const saltSeparator = ":"

// NormalizeUsername trims surrounding whitespace and lowercases.
// It must be applied identically on every derivation for the same user,
// or the derived key silently differs.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// DeriveKey turns (username, master password, salt) into the session key.
//
// The salt is first bound to the normalized username with SHA-256 so the
// same raw salt cannot key a different identity, then Argon2id stretches
// the master password over that binding. There is no stored key, only
// re-derivation, so the output is fully determined by the inputs.
func DeriveKey(username, masterPassword string, salt []byte) []byte {
	bound := sha256.New()
	bound.Write(salt)
	bound.Write([]byte(saltSeparator))
	bound.Write([]byte(NormalizeUsername(username)))

	return argon2.IDKey(
		[]byte(masterPassword),
		bound.Sum(nil),
		argonTime,
		argonMemory,
		argonThreads,
		KeySize,
	)
}
