package group

import (
	"log"
	"net/http"

	"PickMe/internal/api/handlers"
	"PickMe/internal/core/groups"
)

// handleServiceError converts group service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case groups.ErrGroupNotFound:
		handlers.WriteError(w, http.StatusNotFound, "GroupNotFound", "Group not found")
	case groups.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case groups.ErrDuplicateName:
		handlers.WriteError(w, http.StatusBadRequest, "DuplicateName", "You already have a group with this name")
	case groups.ErrInvalidName:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Group name must be between 1 and 100 characters")
	case groups.ErrSelfMembership:
		handlers.WriteError(w, http.StatusBadRequest, "SelfMembership", "You cannot add yourself to a group")
	case groups.ErrAlreadyMember:
		handlers.WriteError(w, http.StatusBadRequest, "AlreadyMember", "User is already in this group")
	case groups.ErrNotMember:
		handlers.WriteError(w, http.StatusBadRequest, "NotMember", "User is not in this group")
	default:
		log.Printf("Group handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
