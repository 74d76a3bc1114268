package user

import (
	"encoding/json"
	"net/http"

	"PickMe/internal/api/handlers"
	"PickMe/internal/core/users"
)

// TokenMinter issues access tokens for authenticated users
// Implemented by the auth middleware so the signing key lives in one place.
type TokenMinter interface {
	Mint(userID int64) (string, error)
}

// RegisterHandler handles account creation
type RegisterHandler struct {
	service users.Service
	tokens  TokenMinter
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.Service, tokens TokenMinter) *RegisterHandler {
	return &RegisterHandler{service: service, tokens: tokens}
}

// authResponse is the envelope returned by register and login
type authResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}

// HandleRegister creates a new account and returns a token
// POST /api/auth/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Mint(user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}
