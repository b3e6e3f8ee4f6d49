package api_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lockbox/internal/api"
	"lockbox/internal/domain"
)

const testSaltB64 = "WlpaWlpaWlpaWlpaWlpaWg==" // 16 bytes of 'Z'

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.Username != "bob" || body.Password != "pw" {
			t.Errorf("body = %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":    "tok123",
			"token_type":      "bearer",
			"user_id":         7,
			"username":        "bob",
			"encryption_salt": testSaltB64,
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	acct, err := c.Login(context.Background(), "bob", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if acct.Token != "tok123" || acct.UserID != 7 || acct.Username != "bob" {
		t.Fatalf("account = %+v", acct)
	}
	want, _ := base64.StdEncoding.DecodeString(testSaltB64)
	if string(acct.Salt) != string(want) {
		t.Fatalf("salt = %x, want %x", acct.Salt, want)
	}
}

func TestLogin_MissingSalt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok123",
			"user_id":      7,
			"username":     "bob",
		})
	}))
	defer srv.Close()

	acct, err := api.New(srv.URL, nil).Login(context.Background(), "bob", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if acct.Salt != nil {
		t.Fatalf("expected nil salt, got %x", acct.Salt)
	}
}

func TestCreateCredential_SecretStaysSealed(t *testing.T) {
	sealed := domain.EncryptedField{Ciphertext: "Y2lwaGVy", Nonce: "bm9uY2U="}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/passwords" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if strings.Contains(body["application_password"], "hunter2") {
			t.Error("plaintext leaked to the wire")
		}
		var field domain.EncryptedField
		if err := json.Unmarshal([]byte(body["application_password"]), &field); err != nil {
			t.Errorf("application_password is not a sealed field: %v", err)
		}
		if field != sealed {
			t.Errorf("field = %+v, want %+v", field, sealed)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"password_id":          42,
			"user_id":              7,
			"application_name":     body["application_name"],
			"account_user_name":    body["account_user_name"],
			"application_password": body["application_password"],
			"datetime_added":       "2026-08-01T12:00:00Z",
		})
	}))
	defer srv.Close()

	c := api.New(srv.URL, nil)
	cred, err := c.CreateCredential(context.Background(), "tok123", domain.CredentialDraft{
		Application:     "example.com",
		AccountUsername: "bob@example.com",
	}, sealed)
	if err != nil {
		t.Fatalf("CreateCredential: %v", err)
	}
	if cred.ID != 42 || cred.Secret != sealed {
		t.Fatalf("credential = %+v", cred)
	}
}

func TestListCredentials(t *testing.T) {
	blob, _ := json.Marshal(domain.EncryptedField{Ciphertext: "Y3Q=", Nonce: "bm8="})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/passwords" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"passwords": []map[string]any{{
				"password_id":          1,
				"user_id":              7,
				"application_name":     "example.com",
				"application_type":     "web",
				"account_user_name":    "bob",
				"application_password": string(blob),
				"datetime_added":       "2026-08-01T12:00:00Z",
			}},
			"total": 1,
		})
	}))
	defer srv.Close()

	creds, err := api.New(srv.URL, nil).ListCredentials(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListCredentials: %v", err)
	}
	if len(creds) != 1 {
		t.Fatalf("len = %d, want 1", len(creds))
	}
	if creds[0].Application != "example.com" || creds[0].ApplicationType != "web" {
		t.Fatalf("credential = %+v", creds[0])
	}
}

func TestDeleteCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/passwords/42" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := api.New(srv.URL, nil).DeleteCredential(context.Background(), "tok", 42); err != nil {
		t.Fatalf("DeleteCredential: %v", err)
	}
}

func TestNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := api.New(srv.URL, nil).Login(context.Background(), "bob", "wrong")
	if err == nil {
		t.Fatal("expected error for 401")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("error %q does not mention the status", err)
	}
}

func TestQuestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/questions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"question_id": 1, "question_text": "First pet's name?"},
			{"question_id": 2, "question_text": "City of birth?"},
		})
	}))
	defer srv.Close()

	qs, err := api.New(srv.URL, nil).Questions(context.Background())
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 2 || qs[0].ID != 1 || qs[1].Text != "City of birth?" {
		t.Fatalf("questions = %+v", qs)
	}
}
