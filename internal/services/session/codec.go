package session

import (
	"lockbox/internal/crypto"
	"lockbox/internal/domain"
)

// Codec converts between plaintext strings and the transport form of a
// sealed field, using whatever key is active in the session.
type Codec struct {
	session *Service
}

// NewCodec returns a codec bound to the given session.
func NewCodec(s *Service) *Codec { return &Codec{session: s} }

// Seal encrypts plaintext (empty string included) under the session key
// with a fresh nonce and encodes both parts as standard base64. Sealing
// the same plaintext twice yields different ciphertexts.
func (c *Codec) Seal(plaintext string) (domain.EncryptedField, error) {
	nonce, ciphertext, err := c.session.seal([]byte(plaintext))
	if err != nil {
		return domain.EncryptedField{}, err
	}
	return domain.EncryptedField{
		Ciphertext: crypto.B64(ciphertext),
		Nonce:      crypto.B64(nonce),
	}, nil
}

// Open reverses Seal. Malformed base64, a wrong key, and tampered input
// all surface as the same ErrDecryptionFailed.
func (c *Codec) Open(field domain.EncryptedField) (string, error) {
	ciphertext, err := crypto.FromB64(field.Ciphertext)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	nonce, err := crypto.FromB64(field.Nonce)
	if err != nil {
		return "", domain.ErrDecryptionFailed
	}
	plaintext, err := c.session.open(nonce, ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Compile-time assertion that Codec implements domain.SecretCodec.
var _ domain.SecretCodec = (*Codec)(nil)
