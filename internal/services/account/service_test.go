package account_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"lockbox/internal/crypto"
	"lockbox/internal/domain"
	"lockbox/internal/services/account"
	"lockbox/internal/services/session"
	"lockbox/internal/store"
)

var testSalt = bytes.Repeat([]byte{0x5a}, crypto.SaltSize)

// fakeClient stubs the backend for account flows.
type fakeClient struct {
	domain.Client
	loginAcct  domain.Account
	loginErr   error
	signupAcct domain.Account
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (domain.Account, error) {
	return f.loginAcct, f.loginErr
}

func (f *fakeClient) Signup(ctx context.Context, req domain.SignupRequest) (domain.Account, error) {
	return f.signupAcct, nil
}

func newService(t *testing.T, client domain.Client) (*account.Service, *session.Service, domain.StateStore) {
	t.Helper()
	sess := session.New()
	state := store.NewStateFileStore(t.TempDir())
	return account.New(client, sess, state), sess, state
}

func TestLogin_EstablishesSession(t *testing.T) {
	client := &fakeClient{loginAcct: domain.Account{
		UserID: 7, Username: "bob", Token: "tok", Salt: testSalt,
	}}
	svc, sess, state := newService(t, client)

	acct, err := svc.Login(context.Background(), "bob", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if acct.Token != "tok" {
		t.Fatalf("account = %+v", acct)
	}
	if !sess.Active() {
		t.Fatal("session inactive after login")
	}
	if _, ok, _ := state.LoadAccount(); !ok {
		t.Fatal("account not persisted")
	}
}

func TestLogin_NoSalt(t *testing.T) {
	client := &fakeClient{loginAcct: domain.Account{
		UserID: 7, Username: "bob", Token: "tok",
	}}
	svc, sess, _ := newService(t, client)

	_, err := svc.Login(context.Background(), "bob", "pw")
	if !errors.Is(err, domain.ErrNoSalt) {
		t.Fatalf("err = %v, want ErrNoSalt", err)
	}
	if sess.Active() {
		t.Fatal("session active despite missing salt")
	}
}

func TestLogin_BackendError(t *testing.T) {
	client := &fakeClient{loginErr: errors.New("401")}
	svc, sess, _ := newService(t, client)

	if _, err := svc.Login(context.Background(), "bob", "pw"); err == nil {
		t.Fatal("expected error")
	}
	if sess.Active() {
		t.Fatal("session active after failed login")
	}
}

func TestSignup_EstablishesSession(t *testing.T) {
	client := &fakeClient{signupAcct: domain.Account{
		UserID: 8, Username: "carol", Token: "tok", Salt: testSalt,
	}}
	svc, sess, _ := newService(t, client)

	acct, err := svc.Signup(context.Background(), domain.SignupRequest{
		Username: "carol", Password: "pw", QuestionID: 1, Answer: "spot",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if acct.UserID != 8 || !sess.Active() {
		t.Fatalf("acct=%+v active=%v", acct, sess.Active())
	}
}

func TestLogout_TearsDownAndForgets(t *testing.T) {
	client := &fakeClient{loginAcct: domain.Account{
		UserID: 7, Username: "bob", Token: "tok", Salt: testSalt,
	}}
	svc, sess, state := newService(t, client)

	if _, err := svc.Login(context.Background(), "bob", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := svc.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sess.Active() {
		t.Fatal("session active after logout")
	}
	if _, ok, _ := state.LoadAccount(); ok {
		t.Fatal("account still stored after logout")
	}
	// Current reflects the cleared state.
	if _, ok, err := svc.Current(); err != nil || ok {
		t.Fatalf("Current after logout: ok=%v err=%v", ok, err)
	}
}
