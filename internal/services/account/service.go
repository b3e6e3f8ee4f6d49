package account

import (
	"context"
	"fmt"

	"lockbox/internal/domain"
	"lockbox/internal/services/session"
)

// Service implements domain.AccountService.
//
// Login and Signup are the only paths that initialize the key session,
// and Logout is the only path that tears it down, so the "at most one
// live key" invariant is owned here.
type Service struct {
	client  domain.Client
	session *session.Service
	state   domain.StateStore
}

// New constructs the account service.
func New(client domain.Client, sess *session.Service, state domain.StateStore) *Service {
	return &Service{client: client, session: sess, state: state}
}

// Signup creates the account, then derives the session key from the
// server-issued salt and persists the login.
func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (domain.Account, error) {
	acct, err := s.client.Signup(ctx, req)
	if err != nil {
		return domain.Account{}, err
	}
	return s.establish(acct, req.Username, req.Password)
}

// Login authenticates and derives the session key. A wrong master
// password is not detected here: the backend verifies its own login
// hash, and the derived key simply fails to open existing secrets.
func (s *Service) Login(ctx context.Context, username, masterPassword string) (domain.Account, error) {
	acct, err := s.client.Login(ctx, username, masterPassword)
	if err != nil {
		return domain.Account{}, err
	}
	return s.establish(acct, username, masterPassword)
}

// establish initializes the key session from the account's salt and
// saves the account. The salt must already exist server-side.
func (s *Service) establish(acct domain.Account, username, masterPassword string) (domain.Account, error) {
	if len(acct.Salt) == 0 {
		return domain.Account{}, fmt.Errorf("%w: ask the server operator to run the salt migration", domain.ErrNoSalt)
	}
	if err := s.session.Initialize(username, masterPassword, acct.Salt); err != nil {
		return domain.Account{}, err
	}
	if err := s.state.SaveAccount(acct); err != nil {
		s.session.Teardown()
		return domain.Account{}, err
	}
	return acct, nil
}

// Logout wipes the session key and forgets the stored account.
func (s *Service) Logout() error {
	s.session.Teardown()
	return s.state.ClearAccount()
}

// Current reports the stored account, if any.
func (s *Service) Current() (domain.Account, bool, error) {
	return s.state.LoadAccount()
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
