package groups

import "errors"

var (
	// ErrGroupNotFound indicates the group doesn't exist or isn't owned by the caller
	// Owner-scoped lookups deliberately don't distinguish the two
	ErrGroupNotFound = errors.New("group not found")

	// ErrDuplicateName indicates the owner already has a group with this name
	ErrDuplicateName = errors.New("a group with this name already exists")

	// ErrSelfMembership indicates an owner tried to add themselves to their own group
	ErrSelfMembership = errors.New("cannot add yourself to a group")

	// ErrAlreadyMember indicates the user is already in the group
	ErrAlreadyMember = errors.New("user is already in this group")

	// ErrNotMember indicates the user is not in the group
	ErrNotMember = errors.New("user is not in this group")

	// ErrUserNotFound indicates the user being added/removed doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidName indicates an empty or oversized group name
	ErrInvalidName = errors.New("group name must be between 1 and 100 characters")
)
