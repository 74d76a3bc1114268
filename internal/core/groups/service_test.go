package groups

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockGroupRepo is a map-backed Repository
type mockGroupRepo struct {
	groups  map[int64]*FriendGroup
	members map[int64][]int64
	nextID  int64
}

func newMockGroupRepo() *mockGroupRepo {
	return &mockGroupRepo{
		groups:  make(map[int64]*FriendGroup),
		members: make(map[int64][]int64),
		nextID:  1,
	}
}

func (m *mockGroupRepo) AllGroupsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var out []int64
	for groupID, members := range m.members {
		for _, member := range members {
			if member == userID {
				out = append(out, groupID)
			}
		}
	}
	return out, nil
}

func (m *mockGroupRepo) GroupsOwnedByWithMember(ctx context.Context, ownerID, memberID int64) ([]int64, error) {
	all, _ := m.AllGroupsForUser(ctx, memberID)
	var out []int64
	for _, groupID := range all {
		if m.groups[groupID].OwnerID == ownerID {
			out = append(out, groupID)
		}
	}
	return out, nil
}

func (m *mockGroupRepo) Create(ctx context.Context, group *FriendGroup) (*FriendGroup, error) {
	for _, existing := range m.groups {
		if existing.OwnerID == group.OwnerID && existing.Name == group.Name {
			return nil, ErrDuplicateName
		}
	}
	group.ID = m.nextID
	m.nextID++
	m.groups[group.ID] = group
	return group, nil
}

func (m *mockGroupRepo) GetByIDAndOwner(ctx context.Context, groupID, ownerID int64) (*FriendGroup, error) {
	group, ok := m.groups[groupID]
	if !ok || group.OwnerID != ownerID {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (m *mockGroupRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*FriendGroup, error) {
	var out []*FriendGroup
	for _, group := range m.groups {
		if group.OwnerID == ownerID {
			out = append(out, group)
		}
	}
	return out, nil
}

func (m *mockGroupRepo) UpdateName(ctx context.Context, groupID int64, name string) (*FriendGroup, error) {
	group, ok := m.groups[groupID]
	if !ok {
		return nil, ErrGroupNotFound
	}
	group.Name = name
	return group, nil
}

func (m *mockGroupRepo) Delete(ctx context.Context, groupID int64) error {
	delete(m.groups, groupID)
	delete(m.members, groupID)
	return nil
}

func (m *mockGroupRepo) ListMembers(ctx context.Context, groupID int64) ([]Member, error) {
	return make([]Member, len(m.members[groupID])), nil
}

func (m *mockGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	for _, member := range m.members[groupID] {
		if member == userID {
			return ErrAlreadyMember
		}
	}
	m.members[groupID] = append(m.members[groupID], userID)
	return nil
}

func (m *mockGroupRepo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	members := m.members[groupID]
	for i, member := range members {
		if member == userID {
			m.members[groupID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return ErrNotMember
}

func TestCreateGroup_ValidatesName(t *testing.T) {
	svc := NewGroupService(newMockGroupRepo())

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidName},
		{"whitespace only", "   ", ErrInvalidName},
		{"too long", strings.Repeat("x", maxGroupNameLength+1), nil},
		{"valid", "Close Friends", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: tt.input})
			switch tt.name {
			case "too long":
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("CreateGroup() error = %v, want ErrInvalidName", err)
				}
			case "valid":
				if err != nil {
					t.Errorf("CreateGroup() error = %v", err)
				}
			default:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CreateGroup() error = %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestCreateGroup_DuplicateNamePerOwner(t *testing.T) {
	repo := newMockGroupRepo()
	svc := NewGroupService(repo)

	if _, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: "Family"}); err != nil {
		t.Fatal(err)
	}

	// Same owner, same name
	if _, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: "Family"}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate name error = %v, want ErrDuplicateName", err)
	}

	// Different owner reuses the name freely
	if _, err := svc.CreateGroup(context.Background(), 2, CreateGroupRequest{Name: "Family"}); err != nil {
		t.Errorf("other owner's group error = %v", err)
	}
}

func TestGroupAccess_OwnerScoped(t *testing.T) {
	repo := newMockGroupRepo()
	svc := NewGroupService(repo)

	group, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: "Family"})
	if err != nil {
		t.Fatal(err)
	}

	// Another user's lookup behaves as not found, not forbidden
	if _, err := svc.GetGroup(context.Background(), 2, group.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("foreign GetGroup() error = %v, want ErrGroupNotFound", err)
	}
	if _, err := svc.UpdateGroup(context.Background(), 2, group.ID, UpdateGroupRequest{Name: "Hijacked"}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("foreign UpdateGroup() error = %v, want ErrGroupNotFound", err)
	}
	if err := svc.DeleteGroup(context.Background(), 2, group.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("foreign DeleteGroup() error = %v, want ErrGroupNotFound", err)
	}
	if err := svc.AddMember(context.Background(), 2, group.ID, 3); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("foreign AddMember() error = %v, want ErrGroupNotFound", err)
	}

	// The group is untouched
	got, err := svc.GetGroup(context.Background(), 1, group.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Family" {
		t.Errorf("group name = %q, want Family", got.Name)
	}
}

func TestAddMember_RejectsSelf(t *testing.T) {
	repo := newMockGroupRepo()
	svc := NewGroupService(repo)

	group, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: "Family"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.AddMember(context.Background(), 1, group.ID, 1); !errors.Is(err, ErrSelfMembership) {
		t.Errorf("self-add error = %v, want ErrSelfMembership", err)
	}
	if len(repo.members[group.ID]) != 0 {
		t.Error("self-add must not create a membership row")
	}
}

func TestAddMember_Duplicate(t *testing.T) {
	repo := newMockGroupRepo()
	svc := NewGroupService(repo)

	group, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: "Family"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.AddMember(context.Background(), 1, group.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddMember(context.Background(), 1, group.ID, 2); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("duplicate add error = %v, want ErrAlreadyMember", err)
	}
}

func TestRemoveMember_NotMember(t *testing.T) {
	repo := newMockGroupRepo()
	svc := NewGroupService(repo)

	group, err := svc.CreateGroup(context.Background(), 1, CreateGroupRequest{Name: "Family"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.RemoveMember(context.Background(), 1, group.ID, 2); !errors.Is(err, ErrNotMember) {
		t.Errorf("remove non-member error = %v, want ErrNotMember", err)
	}

	if err := svc.AddMember(context.Background(), 1, group.ID, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.RemoveMember(context.Background(), 1, group.ID, 2); err != nil {
		t.Errorf("remove member error = %v", err)
	}
}
