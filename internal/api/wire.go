package api

import (
	"encoding/json"
	"fmt"
	"time"

	"lockbox/internal/domain"
)

// tokenResponse is returned by /auth/login and /auth/signup.
type tokenResponse struct {
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	EncryptionSalt string `json:"encryption_salt"`
}

// questionResponse is one entry from /auth/questions.
type questionResponse struct {
	QuestionID   int64  `json:"question_id"`
	QuestionText string `json:"question_text"`
}

// signupRequest mirrors the backend's signup schema.
type signupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	QuestionID      int64  `json:"question_id"`
	Answer          string `json:"answer"`
}

// credentialPayload is the create/update body. ApplicationPassword
// carries the JSON-encoded sealed field; the server treats it as an
// opaque string.
type credentialPayload struct {
	ApplicationName     string `json:"application_name"`
	AccountUserName     string `json:"account_user_name"`
	ApplicationPassword string `json:"application_password"`
	ApplicationType     string `json:"application_type,omitempty"`
}

// credentialResponse is one stored credential record.
type credentialResponse struct {
	PasswordID          int64     `json:"password_id"`
	UserID              int64     `json:"user_id"`
	ApplicationName     string    `json:"application_name"`
	ApplicationType     *string   `json:"application_type"`
	AccountUserName     string    `json:"account_user_name"`
	ApplicationPassword string    `json:"application_password"`
	DatetimeAdded       time.Time `json:"datetime_added"`
}

// credentialListResponse wraps the listing route.
type credentialListResponse struct {
	Passwords []credentialResponse `json:"passwords"`
	Total     int                  `json:"total"`
}

// encodeSealed packs a sealed field into the opaque string the backend
// stores for application_password.
func encodeSealed(field domain.EncryptedField) (string, error) {
	b, err := json.Marshal(field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeSealed unpacks the opaque string back into a sealed field.
func decodeSealed(blob string) (domain.EncryptedField, error) {
	var field domain.EncryptedField
	if err := json.Unmarshal([]byte(blob), &field); err != nil {
		return domain.EncryptedField{}, fmt.Errorf("stored secret is not a sealed field: %w", err)
	}
	return field, nil
}

// toCredential maps a wire record to the domain model.
func toCredential(r credentialResponse) (domain.Credential, error) {
	secret, err := decodeSealed(r.ApplicationPassword)
	if err != nil {
		return domain.Credential{}, err
	}
	appType := ""
	if r.ApplicationType != nil {
		appType = *r.ApplicationType
	}
	return domain.Credential{
		ID:              r.PasswordID,
		Application:     r.ApplicationName,
		ApplicationType: appType,
		AccountUsername: r.AccountUserName,
		Secret:          secret,
		AddedAt:         r.DatetimeAdded,
	}, nil
}
