package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/posts"
)

// Handler handles post creation, retrieval, and feeds
type Handler struct {
	service posts.Service
}

// NewHandler creates a new post handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate creates a new post
// POST /api/posts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 1MB allows the maximum text content plus audience metadata
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// Author is always the authenticated user, never client-supplied
	req.AuthorID = middleware.GetUserID(r)

	view, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}

// HandleGet retrieves a single post, visibility-gated
// GET /api/posts/{postID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetPost(r.Context(), middleware.GetUserID(r), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}

// HandleFeed returns the general feed for the authenticated viewer
// GET /api/posts?limit=...&offset=...
func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	views, err := h.service.ListFeed(r.Context(), middleware.GetUserID(r), limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": views})
}

// HandleUserPosts returns one author's posts as seen by the viewer
// GET /api/posts/user/{userID}
func (h *Handler) HandleUserPosts(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user ID")
		return
	}

	limit, offset := pagination(r)

	views, err := h.service.ListUserPosts(r.Context(), middleware.GetUserID(r), authorID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": views})
}

// HandleUpdate applies a partial update to the caller's own post
// PUT /api/posts/{postID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	view, err := h.service.UpdatePost(r.Context(), middleware.GetUserID(r), postID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}

// HandleDelete deletes the caller's own post
// DELETE /api/posts/{postID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeletePost(r.Context(), middleware.GetUserID(r), postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post ID")
		return 0, false
	}
	return postID, true
}

func pagination(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
