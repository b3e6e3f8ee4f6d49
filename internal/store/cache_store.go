package store

import (
	"path/filepath"
	"sync"
	"time"

	"lockbox/internal/domain"
)

const cacheFilename = "vault_cache.json"

// cachedCredential mirrors domain.Credential with stable JSON names.
type cachedCredential struct {
	ID              int64                 `json:"id"`
	Application     string                `json:"application"`
	ApplicationType string                `json:"application_type,omitempty"`
	AccountUsername string                `json:"account_username"`
	Secret          domain.EncryptedField `json:"secret"`
	AddedAt         time.Time             `json:"added_at"`
}

type cacheFile struct {
	Username    string             `json:"username"`
	Credentials []cachedCredential `json:"credentials"`
}

// CredentialCacheStore keeps the last credential listing for one user so
// the CLI can show metadata without a round trip. Secrets inside remain
// sealed under the session key.
type CredentialCacheStore struct {
	dir string
	mu  sync.Mutex
}

// NewCredentialCacheStore returns a cache rooted at dir.
func NewCredentialCacheStore(dir string) *CredentialCacheStore {
	return &CredentialCacheStore{dir: dir}
}

// SaveCredentials replaces the cached listing for username.
func (s *CredentialCacheStore) SaveCredentials(username string, creds []domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := cacheFile{Username: username, Credentials: make([]cachedCredential, len(creds))}
	for i, c := range creds {
		f.Credentials[i] = cachedCredential{
			ID:              c.ID,
			Application:     c.Application,
			ApplicationType: c.ApplicationType,
			AccountUsername: c.AccountUsername,
			Secret:          c.Secret,
			AddedAt:         c.AddedAt,
		}
	}
	return writeJSON(filepath.Join(s.dir, cacheFilename), f, 0o600)
}

// LoadCredentials returns the cached listing if it belongs to username.
func (s *CredentialCacheStore) LoadCredentials(username string) ([]domain.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f cacheFile
	ok, err := readJSON(filepath.Join(s.dir, cacheFilename), &f)
	if err != nil || !ok {
		return nil, false, err
	}
	if f.Username != username {
		return nil, false, nil
	}
	out := make([]domain.Credential, len(f.Credentials))
	for i, c := range f.Credentials {
		out[i] = domain.Credential{
			ID:              c.ID,
			Application:     c.Application,
			ApplicationType: c.ApplicationType,
			AccountUsername: c.AccountUsername,
			Secret:          c.Secret,
			AddedAt:         c.AddedAt,
		}
	}
	return out, true, nil
}

// Compile-time assertion that CredentialCacheStore implements domain.CredentialCache.
var _ domain.CredentialCache = (*CredentialCacheStore)(nil)
