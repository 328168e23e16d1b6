package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/probox/probox-api/internal/model"
	"github.com/probox/probox-api/internal/service"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /api/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, failure("Request body too large."))
			return
		}
		writeJSON(w, http.StatusBadRequest, failure("Invalid request body."))
		return
	}

	token, err := h.service.Login(r.Context(), req.UserEmail)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, failure("Authentication failed. User not found."))
			return
		}
		writeJSON(w, http.StatusInternalServerError, upstreamFailure("Error during authentication: ", err))
		return
	}

	writeJSON(w, http.StatusOK, model.Response{
		Success: true,
		Message: "Authentication successful.",
		Token:   token,
	})
}

// HandleTest handles GET /api/test requests. It only answers once TokenAuth has passed.
func (h *AuthHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Response{Success: true, Message: "API accessed."})
}
