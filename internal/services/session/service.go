package session

import (
	"fmt"
	"sync"

	"lockbox/internal/crypto"
	"lockbox/internal/domain"
	"lockbox/internal/util/memzero"
)

// Service is the key session manager. The zero value is an uninitialized
// session; Initialize derives and installs a key, Teardown removes it.
// At most one key is live at a time.
//
// Seal/open run under a read lock so concurrent field operations may
// interleave; Initialize and Teardown take the write lock so a lifecycle
// transition can never race an in-flight operation.
type Service struct {
	mu  sync.RWMutex
	key []byte
}

// New returns an uninitialized session.
func New() *Service { return &Service{} }

// Initialize derives the session key from the given credentials and
// installs it, wiping any previously held key first. Calling it twice
// with identical inputs yields byte-identical keys; a wrong password is
// not detectable here and simply derives a different key.
//
// The KDF is CPU-bound and takes on the order of a hundred milliseconds.
func (s *Service) Initialize(username, masterPassword string, salt []byte) error {
	if crypto.NormalizeUsername(username) == "" {
		return fmt.Errorf("%w: username is empty", domain.ErrInvalidInput)
	}
	if masterPassword == "" {
		return fmt.Errorf("%w: master password is empty", domain.ErrInvalidInput)
	}
	if len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: salt must be %d bytes, got %d",
			domain.ErrInvalidInput, crypto.SaltSize, len(salt))
	}

	// Derive outside the lock; only the swap needs exclusivity.
	key := crypto.DeriveKey(username, masterPassword, salt)

	s.mu.Lock()
	defer s.mu.Unlock()
	memzero.Zero(s.key)
	s.key = key
	return nil
}

// Teardown wipes the key and returns the session to the uninitialized
// state. Idempotent.
func (s *Service) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	memzero.Zero(s.key)
	s.key = nil
}

// Active reports whether a session key is currently held.
func (s *Service) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// seal encrypts plaintext under the session key. Only Codec calls this.
func (s *Service) seal(plaintext []byte) (nonce, ciphertext []byte, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, nil, domain.ErrSessionNotReady
	}
	return crypto.Seal(s.key, plaintext)
}

// open decrypts a sealed field under the session key. Only Codec calls
// this. Authentication failures are collapsed into ErrDecryptionFailed so
// callers cannot tell a wrong key from tampered input.
func (s *Service) open(nonce, ciphertext []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return nil, domain.ErrSessionNotReady
	}
	plaintext, err := crypto.Open(s.key, nonce, ciphertext)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return plaintext, nil
}
