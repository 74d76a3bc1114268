package posts

import "context"

// GroupDirectory verifies audience group ownership at post write time
// Implemented by the group repository; posts only need the ownership subset.
type GroupDirectory interface {
	// OwnedGroupIDs returns the subset of groupIDs owned by ownerID
	OwnedGroupIDs(ctx context.Context, ownerID int64, groupIDs []int64) ([]int64, error)
}

// Service defines the business logic interface for posts and visibility
type Service interface {
	// CreatePost validates content and audience (groups mode requires a
	// non-empty, author-owned group set) and persists the post
	CreatePost(ctx context.Context, req CreatePostRequest) (*PostView, error)

	// GetPost retrieves a single post, gated by CanView
	// A hidden or missing post returns ErrPostNotFound either way
	GetPost(ctx context.Context, viewerID, postID int64) (*PostView, error)

	// ListFeed returns the general feed: exactly the posts for which
	// CanView(post, viewer) holds, newest first
	ListFeed(ctx context.Context, viewerID int64, limit, offset int) ([]*PostView, error)

	// ListUserPosts returns one author's posts as seen by the viewer
	ListUserPosts(ctx context.Context, viewerID, authorID int64, limit, offset int) ([]*PostView, error)

	// UpdatePost applies a partial update; author only, audience re-validated
	UpdatePost(ctx context.Context, callerID, postID int64, req UpdatePostRequest) (*PostView, error)

	// DeletePost removes a post; author only
	DeletePost(ctx context.Context, callerID, postID int64) error

	// CanViewPost re-evaluates visibility for a (viewer, post) pair
	// Returns ErrPostNotFound when the post doesn't exist. Used by the like
	// ledger as its precondition; never cached.
	CanViewPost(ctx context.Context, viewerID, postID int64) (bool, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts the post and its audience group set atomically
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post with its audience group IDs, no visibility
	// applied (callers gate with CanView)
	GetByID(ctx context.Context, postID int64) (*Post, error)

	// GetView retrieves a post enriched for display (author, like state)
	// No visibility applied
	GetView(ctx context.Context, postID, viewerID int64) (*PostView, error)

	// ListVisible returns enriched posts matching the visibility filter,
	// ordered by created_at descending. The rendered predicate must select
	// exactly {p : CanView(p, viewer)}, restricted by any author filter.
	ListVisible(ctx context.Context, filter VisibilityFilter, limit, offset int) ([]*PostView, error)

	// Update persists content/audience changes, replacing the audience
	// group set atomically
	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes a post and its dependent rows
	Delete(ctx context.Context, postID int64) error
}
