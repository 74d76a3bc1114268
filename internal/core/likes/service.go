package likes

import (
	"context"
	"errors"

	"PickMe/internal/core/posts"
)

type likeService struct {
	repo       Repository
	visibility VisibilityChecker
}

// NewLikeService creates a new like ledger service
func NewLikeService(repo Repository, visibility VisibilityChecker) Service {
	return &likeService{repo: repo, visibility: visibility}
}

// LikePost records a like
// Flow: re-check visibility -> idempotent upsert -> fresh count
func (s *likeService) LikePost(ctx context.Context, userID, postID int64) (*LikeResult, error) {
	if err := s.requireVisible(ctx, userID, postID); err != nil {
		return nil, err
	}

	created, err := s.repo.Upsert(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &LikeResult{Created: created, LikeCount: count}, nil
}

// UnlikePost removes a like
func (s *likeService) UnlikePost(ctx context.Context, userID, postID int64) (*UnlikeResult, error) {
	if err := s.requireVisible(ctx, userID, postID); err != nil {
		return nil, err
	}

	removed, err := s.repo.Delete(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountForPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &UnlikeResult{Removed: removed, LikeCount: count}, nil
}

func (s *likeService) CountLikes(ctx context.Context, viewerID, postID int64) (int, error) {
	if err := s.requireVisible(ctx, viewerID, postID); err != nil {
		return 0, err
	}
	return s.repo.CountForPost(ctx, postID)
}

func (s *likeService) ListLikers(ctx context.Context, viewerID, postID int64) ([]LikerView, error) {
	if err := s.requireVisible(ctx, viewerID, postID); err != nil {
		return nil, err
	}
	return s.repo.ListForPost(ctx, postID)
}

// requireVisible folds "doesn't exist" and "exists but hidden" into the same
// ErrPostNotFound before any ledger state is touched
func (s *likeService) requireVisible(ctx context.Context, userID, postID int64) error {
	visible, err := s.visibility.CanViewPost(ctx, userID, postID)
	if errors.Is(err, posts.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if !visible {
		return ErrPostNotFound
	}
	return nil
}
