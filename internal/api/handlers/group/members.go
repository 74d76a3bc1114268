package group

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/groups"
)

// MembersHandler handles group membership management
type MembersHandler struct {
	service groups.Service
}

// NewMembersHandler creates a new members handler
func NewMembersHandler(service groups.Service) *MembersHandler {
	return &MembersHandler{service: service}
}

// HandleList lists the members of one of the caller's groups
// GET /api/groups/{groupID}/members
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	members, err := h.service.ListMembers(r.Context(), middleware.GetUserID(r), groupID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"members": members})
}

// HandleAdd adds a user to one of the caller's groups
// POST /api/groups/{groupID}/members
func (h *MembersHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req groups.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.UserID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "userId is required")
		return
	}

	if err := h.service.AddMember(r.Context(), middleware.GetUserID(r), groupID, req.UserID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]string{"detail": "User added to group"})
}

// HandleRemove removes a user from one of the caller's groups
// DELETE /api/groups/{groupID}/members/{userID}
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user ID")
		return
	}

	if err := h.service.RemoveMember(r.Context(), middleware.GetUserID(r), groupID, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
