package handlers

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/isdelr/admin-auth-be/internal/services"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const maxLoginBodyBytes = 1 << 20

// AuthHandler handles HTTP requests for credential verification.
type AuthHandler struct {
	service services.CredentialServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.CredentialServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodyBytes)
	// Empty and non-JSON bodies carry no fields; Verify reports them as missing.
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
			log.Debug().Err(err).Msg("Undecodable login request body")
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	verdict, err := h.service.Verify(r.Context(), payload.UserID, payload.Password)
	switch {
	case err == nil && verdict.Authenticated:
		writeJSON(w, http.StatusOK, LoginResponse{Success: true, Message: "Login successful"})
	case errors.Is(err, services.ErrMissingCredentials):
		writeMessage(w, http.StatusBadRequest, "Missing credentials")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		// The service has already logged the detail; keep the reply opaque.
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

// isJSONRequest reports whether the body should be decoded as JSON. A missing
// Content-Type is treated as JSON.
func isJSONRequest(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}
