package post

import (
	"log"
	"net/http"

	"PickMe/internal/api/handlers"
	"PickMe/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses
//
// ErrPostNotFound always maps to 404, including for posts that exist but are
// hidden from the caller: answering 403 would confirm a hidden post exists.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found or access denied")
	case err == posts.ErrNotAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "Only the author can modify this post")
	case err == posts.ErrForeignGroup:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidAudience", "Audience groups must belong to you")
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
