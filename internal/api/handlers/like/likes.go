package like

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/likes"
)

// Handler handles like and unlike actions on posts
type Handler struct {
	service likes.Service
}

// NewHandler creates a new like handler
func NewHandler(service likes.Service) *Handler {
	return &Handler{service: service}
}

// HandleLike likes a post
// POST /api/posts/{postID}/like
// 201 when the like was created, 200 when it already existed
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.LikePost(r.Context(), middleware.GetUserID(r), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	handlers.WriteJSON(w, status, result)
}

// HandleUnlike removes a like from a post
// DELETE /api/posts/{postID}/like
// Always 200; removed=false reports an unlike of a post that wasn't liked
func (h *Handler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.service.UnlikePost(r.Context(), middleware.GetUserID(r), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// HandleLikers lists who liked a post, most recent first
// GET /api/posts/{postID}/likes
func (h *Handler) HandleLikers(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	viewerID := middleware.GetUserID(r)

	likers, err := h.service.ListLikers(r.Context(), viewerID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	count, err := h.service.CountLikes(r.Context(), viewerID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"likeCount": count,
		"likedBy":   likers,
	})
}

func postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post ID")
		return 0, false
	}
	return postID, true
}
