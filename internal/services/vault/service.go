package vault

import (
	"context"

	"lockbox/internal/domain"
)

// Service implements domain.VaultService.
type Service struct {
	client domain.Client
	codec  domain.SecretCodec
	state  domain.StateStore
	cache  domain.CredentialCache
}

// New constructs the vault service.
func New(client domain.Client, codec domain.SecretCodec, state domain.StateStore, cache domain.CredentialCache) *Service {
	return &Service{client: client, codec: codec, state: state, cache: cache}
}

// Add seals the draft's secret and stores the record.
func (s *Service) Add(ctx context.Context, draft domain.CredentialDraft) (domain.Credential, error) {
	acct, err := s.account()
	if err != nil {
		return domain.Credential{}, err
	}
	secret, err := s.codec.Seal(draft.SecretPlaintext)
	if err != nil {
		return domain.Credential{}, err
	}
	return s.client.CreateCredential(ctx, acct.Token, draft, secret)
}

// List fetches every credential and refreshes the local cache. When the
// backend is unreachable it falls back to the cached listing and reports
// that with the second return; secret fields in the cache stay sealed, so
// only metadata is served offline.
func (s *Service) List(ctx context.Context) ([]domain.Credential, bool, error) {
	acct, err := s.account()
	if err != nil {
		return nil, false, err
	}
	creds, err := s.client.ListCredentials(ctx, acct.Token)
	if err != nil {
		if cached, ok, cacheErr := s.cache.LoadCredentials(acct.Username); cacheErr == nil && ok {
			return cached, true, nil
		}
		return nil, false, err
	}
	// Cache refresh is best-effort; a stale cache only affects offline
	// metadata display.
	_ = s.cache.SaveCredentials(acct.Username, creds)
	return creds, false, nil
}

// Recent fetches the most recently added credentials.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Credential, error) {
	acct, err := s.account()
	if err != nil {
		return nil, err
	}
	return s.client.RecentCredentials(ctx, acct.Token, limit)
}

// Reveal fetches one credential and opens its secret.
func (s *Service) Reveal(ctx context.Context, id int64) (domain.Credential, string, error) {
	acct, err := s.account()
	if err != nil {
		return domain.Credential{}, "", err
	}
	cred, err := s.client.GetCredential(ctx, acct.Token, id)
	if err != nil {
		return domain.Credential{}, "", err
	}
	plaintext, err := s.codec.Open(cred.Secret)
	if err != nil {
		return domain.Credential{}, "", err
	}
	return cred, plaintext, nil
}

// Update seals the new secret and replaces the record.
func (s *Service) Update(ctx context.Context, id int64, draft domain.CredentialDraft) (domain.Credential, error) {
	acct, err := s.account()
	if err != nil {
		return domain.Credential{}, err
	}
	secret, err := s.codec.Seal(draft.SecretPlaintext)
	if err != nil {
		return domain.Credential{}, err
	}
	return s.client.UpdateCredential(ctx, acct.Token, id, draft, secret)
}

// Remove deletes the record.
func (s *Service) Remove(ctx context.Context, id int64) error {
	acct, err := s.account()
	if err != nil {
		return err
	}
	return s.client.DeleteCredential(ctx, acct.Token, id)
}

func (s *Service) account() (domain.Account, error) {
	acct, ok, err := s.state.LoadAccount()
	if err != nil {
		return domain.Account{}, err
	}
	if !ok {
		return domain.Account{}, domain.ErrNotLoggedIn
	}
	return acct, nil
}

// Compile-time assertion that Service implements domain.VaultService.
var _ domain.VaultService = (*Service)(nil)
