package like

import (
	"log"
	"net/http"

	"PickMe/internal/api/handlers"
	"PickMe/internal/core/likes"
)

// handleServiceError converts like service errors to HTTP responses
// A post the caller can't see answers 404, exactly like a missing one.
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case likes.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found or access denied")
	default:
		log.Printf("Like handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
