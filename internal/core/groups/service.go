package groups

import (
	"context"
	"strings"
)

const maxGroupNameLength = 100

type groupService struct {
	repo Repository
}

// NewGroupService creates a new friend group service
func NewGroupService(repo Repository) Service {
	return &groupService{repo: repo}
}

func (s *groupService) CreateGroup(ctx context.Context, callerID int64, req CreateGroupRequest) (*FriendGroup, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxGroupNameLength {
		return nil, ErrInvalidName
	}

	group := &FriendGroup{
		Name:    name,
		OwnerID: callerID,
	}

	// Per-owner name uniqueness is enforced by the DB constraint;
	// the repo maps the violation to ErrDuplicateName
	return s.repo.Create(ctx, group)
}

func (s *groupService) GetGroup(ctx context.Context, callerID, groupID int64) (*FriendGroup, error) {
	return s.repo.GetByIDAndOwner(ctx, groupID, callerID)
}

func (s *groupService) ListGroups(ctx context.Context, callerID int64) ([]*FriendGroup, error) {
	return s.repo.ListByOwner(ctx, callerID)
}

func (s *groupService) UpdateGroup(ctx context.Context, callerID, groupID int64, req UpdateGroupRequest) (*FriendGroup, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxGroupNameLength {
		return nil, ErrInvalidName
	}

	// Ownership check before mutation
	if _, err := s.repo.GetByIDAndOwner(ctx, groupID, callerID); err != nil {
		return nil, err
	}

	return s.repo.UpdateName(ctx, groupID, name)
}

func (s *groupService) DeleteGroup(ctx context.Context, callerID, groupID int64) error {
	if _, err := s.repo.GetByIDAndOwner(ctx, groupID, callerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, groupID)
}

func (s *groupService) ListMembers(ctx context.Context, callerID, groupID int64) ([]Member, error) {
	if _, err := s.repo.GetByIDAndOwner(ctx, groupID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, groupID)
}

// AddMember adds a user to the caller's group
// The owner-is-never-a-member invariant is enforced here: the visibility
// engine's author-scoped queries assume owners don't appear in their own
// membership rows
func (s *groupService) AddMember(ctx context.Context, callerID, groupID, userID int64) error {
	if _, err := s.repo.GetByIDAndOwner(ctx, groupID, callerID); err != nil {
		return err
	}

	if userID == callerID {
		return ErrSelfMembership
	}

	return s.repo.AddMember(ctx, groupID, userID)
}

func (s *groupService) RemoveMember(ctx context.Context, callerID, groupID, userID int64) error {
	if _, err := s.repo.GetByIDAndOwner(ctx, groupID, callerID); err != nil {
		return err
	}
	return s.repo.RemoveMember(ctx, groupID, userID)
}
