package domain

import "errors"

var (
	// ErrInvalidInput is returned for malformed session-initialization
	// arguments: empty username or master password, or a salt of the
	// wrong length. Recoverable by re-prompting the user.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionNotReady is returned when a seal or open is attempted
	// with no active session key. It indicates a caller-ordering bug.
	ErrSessionNotReady = errors.New("no active session key")

	// ErrDecryptionFailed is returned when a sealed field cannot be
	// opened. The message deliberately does not distinguish a wrong key
	// from tampered or malformed input.
	ErrDecryptionFailed = errors.New("decryption failed: wrong key or corrupted data")

	// ErrNoSalt is returned when the server record carries no encryption
	// salt, so no session key can be derived for the account.
	ErrNoSalt = errors.New("account has no encryption salt")

	// ErrNotLoggedIn is returned by vault operations when no account is
	// stored locally.
	ErrNotLoggedIn = errors.New("not logged in")
)
