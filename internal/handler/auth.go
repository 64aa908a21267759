package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ticklist/ticklist/internal/auth"
	"github.com/ticklist/ticklist/internal/credential"
	"github.com/ticklist/ticklist/internal/handler/dto"
	"github.com/ticklist/ticklist/internal/metrics"
)

// AuthHandler handles signup, login and the authenticated identity probe.
type AuthHandler struct {
	creds   *credential.Store
	tokens  *auth.TokenService
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(creds *credential.Store, tokens *auth.TokenService, logger *slog.Logger, recorder metrics.Recorder) *AuthHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthHandler{
		creds:   creds,
		tokens:  tokens,
		logger:  logger,
		metrics: recorder,
	}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: "INVALID_JSON"})
		return
	}

	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Username and password are required", Code: "MISSING_FIELDS"})
		return
	}

	if err := h.creds.Create(req.Username, req.Password); err != nil {
		if errors.Is(err, credential.ErrUserExists) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "User already exists", Code: "USER_EXISTS"})
			return
		}
		h.logger.Error("signup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "An internal error occurred", Code: "INTERNAL_ERROR"})
		return
	}

	h.metrics.IncSignup()
	h.logger.Info("user_created", "username", req.Username)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "New User created successfully"})
}

// Login handles POST /login. On success it issues a bearer token bound to
// the username.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: "INVALID_JSON"})
		return
	}

	user, err := h.creds.Verify(req.Username, req.Password)
	if err != nil {
		// Same response for unknown user and wrong password
		h.logger.Warn("login failed", "username", req.Username)
		writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials", Code: "UNAUTHORIZED"})
		return
	}

	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		h.logger.Error("token issuance failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "An internal error occurred", Code: "INTERNAL_ERROR"})
		return
	}

	h.metrics.IncTokenIssued()
	h.logger.Info("token_issued", "username", user.Username)

	writeJSON(w, http.StatusOK, dto.TokenResponse{Token: token})
}

// Me handles GET /me. The auth middleware has already verified the token
// and injected the identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Hello %s, you're authenticated!", identity),
	})
}
