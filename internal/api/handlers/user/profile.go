package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/users"
)

// ProfileHandler handles profile reads, search, and updates
type ProfileHandler struct {
	service users.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service users.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// HandleMe returns the authenticated user's full profile
// GET /api/users/me
func (h *ProfileHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}

// HandleSearch finds users by username or email fragment
// GET /api/users/search?q=...&limit=...
func (h *ProfileHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	views, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"users": views})
}

// HandleGet returns a user's public profile
// GET /api/users/{userID}
// The caller's own ID returns the full profile (email included)
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user ID")
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if userID == middleware.GetUserID(r) {
		handlers.WriteJSON(w, http.StatusOK, user)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, user.View())
}

// HandleUpdate applies a partial profile update to the caller's own account
// PUT /api/users/{userID}
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), middleware.GetUserID(r), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}
