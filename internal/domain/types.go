package domain

import "time"

// EncryptedField is the wire/storage form of one secret string: an AEAD
// ciphertext (tag included) and the nonce it was sealed under, both as
// standard base64. The server stores it as an opaque blob and never
// decrypts it.
type EncryptedField struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// Credential is one stored account entry. Secret is the sealed
// application password; everything else is plaintext metadata.
type Credential struct {
	ID              int64
	Application     string
	ApplicationType string
	AccountUsername string
	Secret          EncryptedField
	AddedAt         time.Time
}

// Account describes the authenticated user for the current session.
// Salt is the per-user random KDF salt issued by the server at signup.
type Account struct {
	UserID   int64
	Username string
	Token    string
	Salt     []byte
}

// SecurityQuestion is offered by the server during signup.
type SecurityQuestion struct {
	ID   int64
	Text string
}

// SignupRequest carries everything the server needs to create an account.
// The answer is verified server-side for account recovery, so it travels
// under the backend's own contract rather than through the codec.
type SignupRequest struct {
	Username   string
	Password   string
	QuestionID int64
	Answer     string
}

// CredentialDraft is the client-side input for creating or updating a
// credential. SecretPlaintext never leaves the process unsealed.
type CredentialDraft struct {
	Application     string
	ApplicationType string
	AccountUsername string
	SecretPlaintext string
}
