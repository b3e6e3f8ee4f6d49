package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"lockbox/internal/crypto"
	"lockbox/internal/domain"
)

// Client talks to the vault backend over JSON/HTTP.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the backend at base, e.g. "https://vault.example.com".
func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{base: base, http: hc}
}

// Login exchanges credentials for a bearer token and the per-user
// encryption salt. An account created before salts existed comes back
// with a nil Salt; the account service rejects those.
func (c *Client) Login(ctx context.Context, username, password string) (domain.Account, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var resp tokenResponse
	if err := c.post(ctx, "/auth/login", "", body, &resp); err != nil {
		return domain.Account{}, err
	}
	return accountFromToken(resp)
}

// Signup creates an account. The server generates the encryption salt
// and returns it alongside the first token.
func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) (domain.Account, error) {
	body := signupRequest{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.Password,
		QuestionID:      req.QuestionID,
		Answer:          req.Answer,
	}

	var resp tokenResponse
	if err := c.post(ctx, "/auth/signup", "", body, &resp); err != nil {
		return domain.Account{}, err
	}
	return accountFromToken(resp)
}

// Questions lists the security questions offered at signup.
func (c *Client) Questions(ctx context.Context) ([]domain.SecurityQuestion, error) {
	var resp []questionResponse
	if err := c.get(ctx, "/auth/questions", "", &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SecurityQuestion, len(resp))
	for i, q := range resp {
		out[i] = domain.SecurityQuestion{ID: q.QuestionID, Text: q.QuestionText}
	}
	return out, nil
}

// CreateCredential stores a new record. The secret travels only as a
// sealed field.
func (c *Client) CreateCredential(
	ctx context.Context,
	token string,
	draft domain.CredentialDraft,
	secret domain.EncryptedField,
) (domain.Credential, error) {
	blob, err := encodeSealed(secret)
	if err != nil {
		return domain.Credential{}, err
	}
	body := credentialPayload{
		ApplicationName:     draft.Application,
		AccountUserName:     draft.AccountUsername,
		ApplicationPassword: blob,
		ApplicationType:     draft.ApplicationType,
	}

	var resp credentialResponse
	if err := c.post(ctx, "/passwords", token, body, &resp); err != nil {
		return domain.Credential{}, err
	}
	return toCredential(resp)
}

// ListCredentials fetches every record owned by the token's user.
func (c *Client) ListCredentials(ctx context.Context, token string) ([]domain.Credential, error) {
	var resp credentialListResponse
	if err := c.get(ctx, "/passwords", token, &resp); err != nil {
		return nil, err
	}
	return toCredentials(resp.Passwords)
}

// RecentCredentials fetches the most recently added records.
func (c *Client) RecentCredentials(ctx context.Context, token string, limit int) ([]domain.Credential, error) {
	path := "/passwords/recent"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var resp []credentialResponse
	if err := c.get(ctx, path, token, &resp); err != nil {
		return nil, err
	}
	return toCredentials(resp)
}

// GetCredential fetches a single record by id.
func (c *Client) GetCredential(ctx context.Context, token string, id int64) (domain.Credential, error) {
	var resp credentialResponse
	if err := c.get(ctx, "/passwords/"+strconv.FormatInt(id, 10), token, &resp); err != nil {
		return domain.Credential{}, err
	}
	return toCredential(resp)
}

// UpdateCredential replaces the secret and any changed metadata.
func (c *Client) UpdateCredential(
	ctx context.Context,
	token string,
	id int64,
	draft domain.CredentialDraft,
	secret domain.EncryptedField,
) (domain.Credential, error) {
	blob, err := encodeSealed(secret)
	if err != nil {
		return domain.Credential{}, err
	}
	body := credentialPayload{
		ApplicationName:     draft.Application,
		AccountUserName:     draft.AccountUsername,
		ApplicationPassword: blob,
		ApplicationType:     draft.ApplicationType,
	}

	var resp credentialResponse
	if err := c.put(ctx, "/passwords/"+strconv.FormatInt(id, 10), token, body, &resp); err != nil {
		return domain.Credential{}, err
	}
	return toCredential(resp)
}

// DeleteCredential removes a record.
func (c *Client) DeleteCredential(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/passwords/"+strconv.FormatInt(id, 10), token, nil, nil)
}

func (c *Client) post(ctx context.Context, path, token string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, token, in, out)
}

func (c *Client) put(ctx context.Context, path, token string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, token, in, out)
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		body = new(bytes.Buffer)
		if err := json.NewEncoder(body).Encode(in); err != nil {
			return err
		}
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("vault %s %s: %s", method, path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// accountFromToken maps a token response, decoding the base64 salt.
func accountFromToken(resp tokenResponse) (domain.Account, error) {
	acct := domain.Account{
		UserID:   resp.UserID,
		Username: resp.Username,
		Token:    resp.AccessToken,
	}
	if resp.EncryptionSalt != "" {
		salt, err := crypto.FromB64(resp.EncryptionSalt)
		if err != nil {
			return domain.Account{}, fmt.Errorf("server sent malformed encryption salt: %w", err)
		}
		acct.Salt = salt
	}
	return acct, nil
}

func toCredentials(records []credentialResponse) ([]domain.Credential, error) {
	out := make([]domain.Credential, 0, len(records))
	for _, r := range records {
		cred, err := toCredential(r)
		if err != nil {
			return nil, err
		}
		out = append(out, cred)
	}
	return out, nil
}

// Compile-time assertion that Client implements domain.Client.
var _ domain.Client = (*Client)(nil)
