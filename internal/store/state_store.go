package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"lockbox/internal/crypto"
	"lockbox/internal/domain"
)

const stateFilename = "state.json"

// stateFile is the on-disk form of the logged-in account. The salt is
// public KDF input, and the token is what the backend itself issued, so
// the file carries no decryption capability; it still gets 0600.
type stateFile struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Salt     string `json:"salt"` // base64
}

// StateFileStore persists the logged-in account under dir.
type StateFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewStateFileStore returns a StateFileStore rooted at dir.
func NewStateFileStore(dir string) *StateFileStore {
	return &StateFileStore{dir: dir}
}

// SaveAccount writes the account to disk.
func (s *StateFileStore) SaveAccount(acct domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := stateFile{
		UserID:   acct.UserID,
		Username: acct.Username,
		Token:    acct.Token,
		Salt:     crypto.B64(acct.Salt),
	}
	return writeJSON(filepath.Join(s.dir, stateFilename), f, 0o600)
}

// LoadAccount reads the saved account. A missing file reports ok=false.
func (s *StateFileStore) LoadAccount() (domain.Account, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f stateFile
	ok, err := readJSON(filepath.Join(s.dir, stateFilename), &f)
	if err != nil || !ok {
		return domain.Account{}, false, err
	}
	salt, err := crypto.FromB64(f.Salt)
	if err != nil {
		return domain.Account{}, false, err
	}
	return domain.Account{
		UserID:   f.UserID,
		Username: f.Username,
		Token:    f.Token,
		Salt:     salt,
	}, true, nil
}

// ClearAccount removes the state file. Safe to call when none exists.
func (s *StateFileStore) ClearAccount() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, stateFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that StateFileStore implements domain.StateStore.
var _ domain.StateStore = (*StateFileStore)(nil)
