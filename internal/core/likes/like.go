package likes

import (
	"time"

	"PickMe/internal/core/users"
)

// Like is an idempotent engagement fact keyed by (user, post)
// At most one row exists per pair; liking twice is a no-op, not a counter.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// LikerView is one entry of a post's likers list
type LikerView struct {
	LikedAt time.Time      `json:"likedAt"`
	User    users.UserView `json:"user"`
}

// LikeResult reports the outcome of a like action
type LikeResult struct {
	Created   bool `json:"created"`
	LikeCount int  `json:"likeCount"`
}

// UnlikeResult reports the outcome of an unlike action
type UnlikeResult struct {
	Removed   bool `json:"removed"`
	LikeCount int  `json:"likeCount"`
}
