package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/credential"
	"github.com/ticklist/ticklist/internal/handler/dto"
	"github.com/ticklist/ticklist/internal/metrics"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *credential.Store, *metrics.InMemoryRecorder) {
	t.Helper()

	creds := credential.NewStore()
	tokens := auth.NewTokenService("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewInMemory()

	return NewAuthHandler(creds, tokens, logger, recorder), creds, recorder
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Parallel()

	h, creds, recorder := newAuthHandler(t)

	rec := postJSON(t, h.Signup, "/signup", `{"Username":"alice","Password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "New User created successfully" {
		t.Errorf("message = %q", resp.Message)
	}

	if !creds.Exists("alice") {
		t.Error("user was not created in the store")
	}
	if got := recorder.Snapshot().Signups; got != 1 {
		t.Errorf("signup counter = %d, want 1", got)
	}
}

func TestAuthHandler_SignupDuplicate(t *testing.T) {
	t.Parallel()

	h, _, _ := newAuthHandler(t)

	if rec := postJSON(t, h.Signup, "/signup", `{"Username":"alice","Password":"pw1"}`); rec.Code != http.StatusOK {
		t.Fatalf("first signup status = %d, want 200", rec.Code)
	}

	rec := postJSON(t, h.Signup, "/signup", `{"Username":"alice","Password":"pw2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second signup status = %d, want 400", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "User already exists" {
		t.Errorf("error = %q, want %q", resp.Error, "User already exists")
	}
}

func TestAuthHandler_SignupBadPayloads(t *testing.T) {
	t.Parallel()

	h, _, _ := newAuthHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"missing username", `{"Password":"pw"}`},
		{"missing password", `{"Username":"alice"}`},
		{"empty", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postJSON(t, h.Signup, "/signup", tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	h, creds, recorder := newAuthHandler(t)
	if err := creds.Create("alice", "pw1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := postJSON(t, h.Login, "/login", `{"Username":"alice","Password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.TokenResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("response has empty token")
	}

	// The embedded identity must equal the username
	tokens := auth.NewTokenService("test-secret", time.Hour)
	identity, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity != "alice" {
		t.Errorf("token identity = %q, want %q", identity, "alice")
	}

	if got := recorder.Snapshot().TokensIssued; got != 1 {
		t.Errorf("tokens issued counter = %d, want 1", got)
	}
}

func TestAuthHandler_LoginRejections(t *testing.T) {
	t.Parallel()

	h, creds, _ := newAuthHandler(t)
	if err := creds.Create("alice", "pw1"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"Username":"alice","Password":"wrong"}`},
		{"unknown user", `{"Username":"bob","Password":"pw1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postJSON(t, h.Login, "/login", tt.body); rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	h, _, _ := newAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(auth.ContextWithIdentity(req.Context(), "alice"))

	rec := httptest.NewRecorder()
	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp dto.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Hello alice, you're authenticated!" {
		t.Errorf("message = %q", resp.Message)
	}
}
