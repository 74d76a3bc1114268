package groups

import (
	"time"

	"PickMe/internal/core/users"
)

// FriendGroup represents an owner-curated audience list
// Groups are private to their owner: only the owner can read or mutate them.
// The owner is never a member of their own group (AddMember rejects self-add);
// the visibility engine relies on this when intersecting memberships.
type FriendGroup struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Name        string    `json:"name" db:"name"`
	ID          int64     `json:"id" db:"id"`
	OwnerID     int64     `json:"ownerId" db:"owner_id"`
	MemberCount int       `json:"memberCount" db:"member_count"`
}

// CreateGroupRequest represents input for creating a group
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// UpdateGroupRequest represents input for renaming a group
type UpdateGroupRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest represents input for adding a user to a group
type AddMemberRequest struct {
	UserID int64 `json:"userId"`
}

// Member is a group membership entry with the member's public profile
type Member struct {
	AddedAt time.Time      `json:"addedAt"`
	User    users.UserView `json:"user"`
}
