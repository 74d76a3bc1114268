package user

import (
	"encoding/json"
	"net/http"

	"PickMe/internal/api/handlers"
	"PickMe/internal/core/users"
)

// LoginHandler handles email/password authentication
type LoginHandler struct {
	service users.Service
	tokens  TokenMinter
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, tokens TokenMinter) *LoginHandler {
	return &LoginHandler{service: service, tokens: tokens}
}

// HandleLogin verifies credentials and returns a token
// POST /api/auth/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "email and password are required")
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Mint(user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
