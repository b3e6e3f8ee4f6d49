// Package crypto holds the key-derivation and AEAD primitives for the
// vault. Keys are derived in two steps: a fast hash binds the per-user
// salt to the normalized username, then Argon2id stretches the master
// password over that binding. Field sealing uses ChaCha20-Poly1305 with
// a fresh random nonce per call.
package crypto
