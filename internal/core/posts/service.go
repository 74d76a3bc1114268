package posts

import (
	"context"
	"fmt"

	"PickMe/internal/core/groups"
)

const (
	maxTextLength  = 5000
	maxMediaURLLen = 2000

	defaultFeedLimit = 25
	maxFeedLimit     = 100
)

type postService struct {
	repo       Repository
	membership groups.MembershipIndex
	directory  GroupDirectory
}

// NewPostService creates a new post service
// membership is the read-only group membership index the visibility engine
// consumes; directory validates audience group ownership at write time.
func NewPostService(repo Repository, membership groups.MembershipIndex, directory GroupDirectory) Service {
	return &postService{
		repo:       repo,
		membership: membership,
		directory:  directory,
	}
}

// CreatePost creates a new post
// Flow: validate content shape -> validate audience descriptor -> insert
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error) {
	if req.ContentType == "" {
		req.ContentType = ContentTypeText
	}
	if req.Audience == "" {
		req.Audience = AudienceEveryone
	}

	post := &Post{
		AuthorID:         req.AuthorID,
		ContentType:      req.ContentType,
		TextContent:      req.TextContent,
		MediaURL:         req.MediaURL,
		MediaType:        req.MediaType,
		Audience:         req.Audience,
		AudienceGroupIDs: req.AudienceGroupIDs,
	}

	if err := s.validateContent(post); err != nil {
		return nil, err
	}
	if err := s.validateAudience(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return s.repo.GetView(ctx, created.ID, req.AuthorID)
}

// GetPost retrieves a single post, gated by the audience resolver
func (s *postService) GetPost(ctx context.Context, viewerID, postID int64) (*PostView, error) {
	view, err := s.repo.GetView(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}

	visible, err := s.canView(ctx, &view.Post, viewerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		// Hidden posts answer exactly like missing ones
		return nil, ErrPostNotFound
	}

	return view, nil
}

// ListFeed returns the general feed via the bulk visibility filter
func (s *postService) ListFeed(ctx context.Context, viewerID int64, limit, offset int) ([]*PostView, error) {
	limit = clampLimit(limit)
	return s.repo.ListVisible(ctx, VisibleTo(viewerID), limit, offset)
}

// ListUserPosts returns one author's posts as seen by the viewer
func (s *postService) ListUserPosts(ctx context.Context, viewerID, authorID int64, limit, offset int) ([]*PostView, error) {
	limit = clampLimit(limit)
	return s.repo.ListVisible(ctx, AuthorVisibleTo(viewerID, authorID), limit, offset)
}

// UpdatePost applies a partial update
// Visibility is checked first so a non-author who can't see the post gets
// ErrPostNotFound, while a non-author who can see it gets ErrNotAuthor.
func (s *postService) UpdatePost(ctx context.Context, callerID, postID int64, req UpdatePostRequest) (*PostView, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	visible, err := s.canView(ctx, post, callerID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return nil, ErrNotAuthor
	}

	if req.TextContent != nil {
		post.TextContent = *req.TextContent
	}
	if req.Audience != nil {
		post.Audience = *req.Audience
	}
	if req.AudienceGroupIDs != nil {
		post.AudienceGroupIDs = *req.AudienceGroupIDs
	}
	if post.Audience != AudienceGroups {
		post.AudienceGroupIDs = nil
	}

	if err := s.validateContent(post); err != nil {
		return nil, err
	}
	if err := s.validateAudience(ctx, post); err != nil {
		return nil, err
	}

	if _, err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.repo.GetView(ctx, postID, callerID)
}

// DeletePost removes a post; same not-found/forbidden merge as UpdatePost
func (s *postService) DeletePost(ctx context.Context, callerID, postID int64) error {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	visible, err := s.canView(ctx, post, callerID)
	if err != nil {
		return err
	}
	if !visible {
		return ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return ErrNotAuthor
	}

	return s.repo.Delete(ctx, postID)
}

// CanViewPost re-evaluates visibility for a (viewer, post) pair
func (s *postService) CanViewPost(ctx context.Context, viewerID, postID int64) (bool, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}
	return s.canView(ctx, post, viewerID)
}

// canView resolves the viewer's memberships and applies the pure predicate
// The membership snapshot is fetched per call; results are never reused
// across requests because memberships and audiences are mutable.
func (s *postService) canView(ctx context.Context, post *Post, viewerID int64) (bool, error) {
	// Skip the membership lookup when the answer can't depend on it
	if post.AuthorID == viewerID || post.Audience != AudienceGroups {
		return CanView(post, viewerID, nil), nil
	}

	viewerGroups, err := s.membership.AllGroupsForUser(ctx, viewerID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve viewer memberships: %w", err)
	}

	return CanView(post, viewerID, viewerGroups), nil
}

func (s *postService) validateContent(post *Post) error {
	switch post.ContentType {
	case ContentTypeText:
		if post.TextContent == "" {
			return NewValidationError("textContent", "text content is required for text posts")
		}
		post.MediaURL = ""
		post.MediaType = ""
	case ContentTypeMedia:
		if post.MediaURL == "" {
			return NewValidationError("mediaUrl", "media URL is required for media posts")
		}
		switch post.MediaType {
		case MediaTypePhoto, MediaTypeVideo, MediaTypeLink:
		case "":
			return NewValidationError("mediaType", "media type is required for media posts")
		default:
			return NewValidationError("mediaType", "media type must be photo, video, or link")
		}
	default:
		return NewValidationError("contentType", "content type must be text or media")
	}

	if len(post.TextContent) > maxTextLength {
		return NewValidationError("textContent", "text content must be at most 5000 characters")
	}
	if len(post.MediaURL) > maxMediaURLLen {
		return NewValidationError("mediaUrl", "media URL is too long")
	}

	return nil
}

// validateAudience enforces the write-time audience invariant the resolver
// relies on: groups mode carries a non-empty set of author-owned groups
func (s *postService) validateAudience(ctx context.Context, post *Post) error {
	if !post.Audience.Valid() {
		return NewValidationError("audience", "audience must be only_me, groups, or everyone")
	}

	if post.Audience != AudienceGroups {
		if len(post.AudienceGroupIDs) > 0 {
			return NewValidationError("audienceGroups", "audience groups are only allowed with the groups audience")
		}
		return nil
	}

	if len(post.AudienceGroupIDs) == 0 {
		return NewValidationError("audienceGroups", "at least one group is required when audience is groups")
	}

	owned, err := s.directory.OwnedGroupIDs(ctx, post.AuthorID, post.AudienceGroupIDs)
	if err != nil {
		return fmt.Errorf("failed to verify audience groups: %w", err)
	}
	if len(owned) != len(uniqueIDs(post.AudienceGroupIDs)) {
		return ErrForeignGroup
	}

	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultFeedLimit
	}
	if limit > maxFeedLimit {
		return maxFeedLimit
	}
	return limit
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
