package groups

import "context"

// MembershipIndex is the read-only membership lookup the visibility engine
// consumes. Results are always a fresh snapshot; callers must not cache them
// across requests, since memberships and audience settings are mutable.
type MembershipIndex interface {
	// AllGroupsForUser returns the IDs of every group the user is a member
	// of, regardless of owner
	AllGroupsForUser(ctx context.Context, userID int64) ([]int64, error)

	// GroupsOwnedByWithMember returns the IDs of groups owned by ownerID
	// that memberID belongs to
	GroupsOwnedByWithMember(ctx context.Context, ownerID, memberID int64) ([]int64, error)
}

// Service defines the business logic interface for friend groups
// All operations are owner-scoped: callerID is the authenticated user and a
// group that exists but belongs to someone else behaves as not found.
type Service interface {
	CreateGroup(ctx context.Context, callerID int64, req CreateGroupRequest) (*FriendGroup, error)
	GetGroup(ctx context.Context, callerID, groupID int64) (*FriendGroup, error)
	ListGroups(ctx context.Context, callerID int64) ([]*FriendGroup, error)
	UpdateGroup(ctx context.Context, callerID, groupID int64, req UpdateGroupRequest) (*FriendGroup, error)
	DeleteGroup(ctx context.Context, callerID, groupID int64) error

	// ListMembers returns the group's members with their public profiles
	ListMembers(ctx context.Context, callerID, groupID int64) ([]Member, error)

	// AddMember adds a user to the caller's group
	// Rejects self-add (ErrSelfMembership) and duplicates (ErrAlreadyMember)
	AddMember(ctx context.Context, callerID, groupID, userID int64) error

	// RemoveMember removes a user from the caller's group
	// Returns ErrNotMember if the user wasn't in the group
	RemoveMember(ctx context.Context, callerID, groupID, userID int64) error
}

// Repository defines the data access interface for friend groups
// Implementations also serve as the MembershipIndex for the visibility engine.
type Repository interface {
	MembershipIndex

	Create(ctx context.Context, group *FriendGroup) (*FriendGroup, error)

	// GetByIDAndOwner retrieves a group only if owned by ownerID
	GetByIDAndOwner(ctx context.Context, groupID, ownerID int64) (*FriendGroup, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]*FriendGroup, error)
	UpdateName(ctx context.Context, groupID int64, name string) (*FriendGroup, error)
	Delete(ctx context.Context, groupID int64) error

	ListMembers(ctx context.Context, groupID int64) ([]Member, error)

	// AddMember inserts a membership row
	// Returns ErrAlreadyMember on conflict, ErrUserNotFound on a missing user
	AddMember(ctx context.Context, groupID, userID int64) error

	// RemoveMember deletes a membership row
	// Returns ErrNotMember if no row was deleted
	RemoveMember(ctx context.Context, groupID, userID int64) error
}
