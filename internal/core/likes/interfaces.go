package likes

import "context"

// VisibilityChecker re-evaluates post visibility for the acting user
// Implemented by the post service; a post must be visible to be liked.
type VisibilityChecker interface {
	// CanViewPost returns whether the viewer may see the post, or an error
	// carrying the posts package's not-found sentinel when it doesn't exist
	CanViewPost(ctx context.Context, viewerID, postID int64) (bool, error)
}

// Service defines the business logic interface for the like ledger
type Service interface {
	// LikePost records a like
	// Precondition: the post is visible to the user, else ErrPostNotFound
	// (never a distinct forbidden answer). Created is false if the like
	// already existed; state is unchanged in that case.
	LikePost(ctx context.Context, userID, postID int64) (*LikeResult, error)

	// UnlikePost removes a like, same visibility precondition
	// Removed is false if no like existed
	UnlikePost(ctx context.Context, userID, postID int64) (*UnlikeResult, error)

	// CountLikes returns the number of likes on a visible post
	CountLikes(ctx context.Context, viewerID, postID int64) (int, error)

	// ListLikers returns who liked a visible post, most recent first
	ListLikers(ctx context.Context, viewerID, postID int64) ([]LikerView, error)
}

// Repository defines the data access interface for likes
// Upsert and Delete are single-statement operations on the composite
// (user, post) key; storage-native atomicity makes concurrent duplicates
// collapse into one row without explicit locking.
type Repository interface {
	// Upsert inserts the like if absent; reports whether a row was created
	Upsert(ctx context.Context, userID, postID int64) (bool, error)

	// Delete removes the like if present; reports whether a row was removed
	Delete(ctx context.Context, userID, postID int64) (bool, error)

	// CountForPost returns the like count for a post
	CountForPost(ctx context.Context, postID int64) (int, error)

	// ListForPost returns likers ordered by like creation time descending
	ListForPost(ctx context.Context, postID int64) ([]LikerView, error)
}
