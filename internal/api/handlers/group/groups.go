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

// Handler handles friend group CRUD
// All operations are scoped to the authenticated owner.
type Handler struct {
	service groups.Service
}

// NewHandler creates a new group handler
func NewHandler(service groups.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate creates a new friend group
// POST /api/groups
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req groups.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	group, err := h.service.CreateGroup(r.Context(), middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, group)
}

// HandleList lists the caller's groups
// GET /api/groups
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListGroups(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"groups": result})
}

// HandleGet returns one of the caller's groups
// GET /api/groups/{groupID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	group, err := h.service.GetGroup(r.Context(), middleware.GetUserID(r), groupID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, group)
}

// HandleUpdate renames one of the caller's groups
// PUT /api/groups/{groupID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req groups.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	group, err := h.service.UpdateGroup(r.Context(), middleware.GetUserID(r), groupID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, group)
}

// HandleDelete deletes one of the caller's groups
// DELETE /api/groups/{groupID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteGroup(r.Context(), middleware.GetUserID(r), groupID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func groupIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid group ID")
		return 0, false
	}
	return groupID, true
}
