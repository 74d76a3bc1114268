package user

import (
	"log"
	"net/http"

	"PickMe/internal/api/handlers"
	"PickMe/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == users.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case err == users.ErrUsernameTaken:
		handlers.WriteError(w, http.StatusConflict, "UsernameTaken", "Username already taken")
	case err == users.ErrEmailTaken:
		handlers.WriteError(w, http.StatusConflict, "EmailTaken", "Email already registered")
	case err == users.ErrInvalidCredentials:
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")
	case err == users.ErrNotAuthorized:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "You can only modify your own profile")
	case users.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		log.Printf("User handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
