package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// NonceSize is the AEAD nonce length in bytes.
const NonceSize = chacha20poly1305.NonceSize

var (
	errBadKeySize   = errors.New("key must be 32 bytes")
	errBadNonceSize = errors.New("nonce must be 12 bytes")
)

// Seal encrypts plaintext under key with a fresh random nonce and no
// associated data. Nonce reuse under the same key breaks confidentiality
// for this cipher, so the nonce is always drawn from crypto/rand here
// rather than supplied by the caller.
func Seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, errBadKeySize
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts ciphertext produced by Seal, verifying the embedded
// authentication tag.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errBadKeySize
	}
	// The underlying AEAD panics on a wrong-length nonce, and the nonce
	// arrives from untrusted storage, so it is validated like the key.
	if len(nonce) != NonceSize {
		return nil, errBadNonceSize
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, nil)
}
