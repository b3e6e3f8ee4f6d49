package domain

import "context"

// SecretCodec converts between plaintext strings and sealed fields using
// whatever key is active in the key session.
type SecretCodec interface {
	Seal(plaintext string) (EncryptedField, error)
	Open(field EncryptedField) (string, error)
}

// AccountService owns the session lifecycle: authenticate, derive the
// session key, and tear it down again.
type AccountService interface {
	Signup(ctx context.Context, req SignupRequest) (Account, error)
	Login(ctx context.Context, username, masterPassword string) (Account, error)
	Logout() error
	Current() (Account, bool, error)
}

// VaultService reads and writes credentials, sealing and opening their
// secret fields at the network boundary. List's second return reports
// whether the listing came from the offline cache instead of the backend.
type VaultService interface {
	Add(ctx context.Context, draft CredentialDraft) (Credential, error)
	List(ctx context.Context) ([]Credential, bool, error)
	Recent(ctx context.Context, limit int) ([]Credential, error)
	Reveal(ctx context.Context, id int64) (Credential, string, error)
	Update(ctx context.Context, id int64, draft CredentialDraft) (Credential, error)
	Remove(ctx context.Context, id int64) error
}

// Client is how we talk to the vault backend. It only ever carries
// opaque ciphertext+nonce blobs for secret fields.
type Client interface {
	Login(ctx context.Context, username, password string) (Account, error)
	Signup(ctx context.Context, req SignupRequest) (Account, error)
	Questions(ctx context.Context) ([]SecurityQuestion, error)

	CreateCredential(ctx context.Context, token string, draft CredentialDraft, secret EncryptedField) (Credential, error)
	ListCredentials(ctx context.Context, token string) ([]Credential, error)
	RecentCredentials(ctx context.Context, token string, limit int) ([]Credential, error)
	GetCredential(ctx context.Context, token string, id int64) (Credential, error)
	UpdateCredential(ctx context.Context, token string, id int64, draft CredentialDraft, secret EncryptedField) (Credential, error)
	DeleteCredential(ctx context.Context, token string, id int64) error
}

// StateStore persists the logged-in account between CLI invocations.
type StateStore interface {
	SaveAccount(acct Account) error
	LoadAccount() (Account, bool, error)
	ClearAccount() error
}

// CredentialCache keeps the last credential listing per user. Secret
// fields inside it remain sealed.
type CredentialCache interface {
	SaveCredentials(username string, creds []Credential) error
	LoadCredentials(username string) ([]Credential, bool, error)
}
