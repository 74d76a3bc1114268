package like

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/middleware"
	"PickMe/internal/core/likes"
)

// mockLikeService implements likes.Service with canned responses
type mockLikeService struct {
	likeResult   *likes.LikeResult
	unlikeResult *likes.UnlikeResult
	likers       []likes.LikerView
	count        int
	err          error
	lastUserID   int64
	lastPostID   int64
}

func (m *mockLikeService) LikePost(ctx context.Context, userID, postID int64) (*likes.LikeResult, error) {
	m.lastUserID, m.lastPostID = userID, postID
	if m.err != nil {
		return nil, m.err
	}
	return m.likeResult, nil
}

func (m *mockLikeService) UnlikePost(ctx context.Context, userID, postID int64) (*likes.UnlikeResult, error) {
	m.lastUserID, m.lastPostID = userID, postID
	if m.err != nil {
		return nil, m.err
	}
	return m.unlikeResult, nil
}

func (m *mockLikeService) CountLikes(ctx context.Context, viewerID, postID int64) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func (m *mockLikeService) ListLikers(ctx context.Context, viewerID, postID int64) ([]likes.LikerView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.likers, nil
}

// newRequest builds an authenticated request with a chi postID URL param
func newRequest(t *testing.T, method, postID string, userID int64) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, "/api/posts/"+postID+"/like", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("postID", postID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.UserIDKey, userID)

	return req.WithContext(ctx)
}

func TestHandleLike_CreatedVsExisting(t *testing.T) {
	tests := []struct {
		name       string
		result     *likes.LikeResult
		wantStatus int
	}{
		{"new like", &likes.LikeResult{Created: true, LikeCount: 1}, http.StatusCreated},
		{"repeat like", &likes.LikeResult{Created: false, LikeCount: 1}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockLikeService{likeResult: tt.result}
			handler := NewHandler(service)

			rec := httptest.NewRecorder()
			handler.HandleLike(rec, newRequest(t, http.MethodPost, "10", 2))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body likes.LikeResult
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.LikeCount != 1 {
				t.Errorf("likeCount = %d, want 1", body.LikeCount)
			}
		})
	}
}

func TestHandleLike_ActorFromContext(t *testing.T) {
	service := &mockLikeService{likeResult: &likes.LikeResult{Created: true, LikeCount: 1}}
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleLike(rec, newRequest(t, http.MethodPost, "10", 42))

	if service.lastUserID != 42 {
		t.Errorf("service called with user %d, want 42 from auth context", service.lastUserID)
	}
	if service.lastPostID != 10 {
		t.Errorf("service called with post %d, want 10 from URL", service.lastPostID)
	}
}

func TestHandleLike_HiddenPostIs404(t *testing.T) {
	service := &mockLikeService{err: likes.ErrPostNotFound}
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleLike(rec, newRequest(t, http.MethodPost, "10", 2))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleLike_InvalidPostID(t *testing.T) {
	service := &mockLikeService{}
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleLike(rec, newRequest(t, http.MethodPost, "abc", 2))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleUnlike_AlwaysOK(t *testing.T) {
	tests := []struct {
		name   string
		result *likes.UnlikeResult
	}{
		{"removed", &likes.UnlikeResult{Removed: true, LikeCount: 0}},
		{"was not liked", &likes.UnlikeResult{Removed: false, LikeCount: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockLikeService{unlikeResult: tt.result}
			handler := NewHandler(service)

			rec := httptest.NewRecorder()
			handler.HandleUnlike(rec, newRequest(t, http.MethodDelete, "10", 2))

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var body likes.UnlikeResult
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.Removed != tt.result.Removed {
				t.Errorf("removed = %v, want %v", body.Removed, tt.result.Removed)
			}
		})
	}
}

func TestHandleLikers(t *testing.T) {
	service := &mockLikeService{likers: make([]likes.LikerView, 2), count: 2}
	handler := NewHandler(service)

	rec := httptest.NewRecorder()
	handler.HandleLikers(rec, newRequest(t, http.MethodGet, "10", 2))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		LikeCount int               `json:"likeCount"`
		LikedBy   []likes.LikerView `json:"likedBy"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.LikeCount != 2 || len(body.LikedBy) != 2 {
		t.Errorf("body = %+v, want 2 likers", body)
	}
}
