package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"PickMe/internal/core/groups"
)

// PostgresGroupRepo is the PostgreSQL friend group repository
// Exported (unlike the other repos) because it is wired three ways: as
// groups.Repository, as the visibility engine's groups.MembershipIndex, and
// as posts.GroupDirectory for write-time audience validation.
type PostgresGroupRepo struct {
	db *sql.DB
}

var _ groups.Repository = (*PostgresGroupRepo)(nil)

// NewGroupRepository creates a new PostgreSQL friend group repository
func NewGroupRepository(db *sql.DB) *PostgresGroupRepo {
	return &PostgresGroupRepo{db: db}
}

// Create inserts a new friend group
func (r *PostgresGroupRepo) Create(ctx context.Context, group *groups.FriendGroup) (*groups.FriendGroup, error) {
	query := `
		INSERT INTO friend_groups (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, group.Name, group.OwnerID).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "friend_groups_owner_id_name_key") {
			return nil, groups.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetByIDAndOwner retrieves a group only if owned by ownerID
// A group owned by someone else is indistinguishable from a missing one
func (r *PostgresGroupRepo) GetByIDAndOwner(ctx context.Context, groupID, ownerID int64) (*groups.FriendGroup, error) {
	query := `
		SELECT g.id, g.name, g.owner_id, g.created_at, g.updated_at,
			(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) AS member_count
		FROM friend_groups g
		WHERE g.id = $1 AND g.owner_id = $2`

	group := &groups.FriendGroup{}
	err := r.db.QueryRowContext(ctx, query, groupID, ownerID).Scan(
		&group.ID, &group.Name, &group.OwnerID,
		&group.CreatedAt, &group.UpdatedAt, &group.MemberCount,
	)
	if err == sql.ErrNoRows {
		return nil, groups.ErrGroupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// ListByOwner retrieves all groups owned by a user, ordered by name
func (r *PostgresGroupRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*groups.FriendGroup, error) {
	query := `
		SELECT g.id, g.name, g.owner_id, g.created_at, g.updated_at,
			(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) AS member_count
		FROM friend_groups g
		WHERE g.owner_id = $1
		ORDER BY g.name`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	result := []*groups.FriendGroup{}
	for rows.Next() {
		group := &groups.FriendGroup{}
		if err := rows.Scan(
			&group.ID, &group.Name, &group.OwnerID,
			&group.CreatedAt, &group.UpdatedAt, &group.MemberCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		result = append(result, group)
	}

	return result, rows.Err()
}

// UpdateName renames a group
func (r *PostgresGroupRepo) UpdateName(ctx context.Context, groupID int64, name string) (*groups.FriendGroup, error) {
	query := `
		UPDATE friend_groups
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, owner_id, created_at, updated_at`

	group := &groups.FriendGroup{}
	err := r.db.QueryRowContext(ctx, query, groupID, name).Scan(
		&group.ID, &group.Name, &group.OwnerID, &group.CreatedAt, &group.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, groups.ErrGroupNotFound
	}
	if err != nil {
		if strings.Contains(err.Error(), "friend_groups_owner_id_name_key") {
			return nil, groups.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to rename group: %w", err)
	}

	return group, nil
}

// Delete removes a group; memberships and audience references cascade
func (r *PostgresGroupRepo) Delete(ctx context.Context, groupID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM friend_groups WHERE id = $1`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return groups.ErrGroupNotFound
	}

	return nil
}

// ListMembers returns the group's members with their public profiles
func (r *PostgresGroupRepo) ListMembers(ctx context.Context, groupID int64) ([]groups.Member, error) {
	query := `
		SELECT u.id, u.username, u.bio, u.avatar_url, gm.added_at
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY u.username`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	defer rows.Close()

	members := []groups.Member{}
	for rows.Next() {
		var m groups.Member
		var avatarURL sql.NullString
		if err := rows.Scan(&m.User.ID, &m.User.Username, &m.User.Bio, &avatarURL, &m.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		if avatarURL.Valid {
			m.User.AvatarURL = &avatarURL.String
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// AddMember inserts a membership row
func (r *PostgresGroupRepo) AddMember(ctx context.Context, groupID, userID int64) error {
	query := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (group_id, user_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "group_members_user_id_fkey") {
			return groups.ErrUserNotFound
		}
		return fmt.Errorf("failed to add group member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check add member result: %w", err)
	}
	if affected == 0 {
		return groups.ErrAlreadyMember
	}

	return nil
}

// RemoveMember deletes a membership row
func (r *PostgresGroupRepo) RemoveMember(ctx context.Context, groupID, userID int64) error {
	query := `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check remove member result: %w", err)
	}
	if affected == 0 {
		return groups.ErrNotMember
	}

	return nil
}

// AllGroupsForUser returns every group the user belongs to (MembershipIndex)
func (r *PostgresGroupRepo) AllGroupsForUser(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT group_id FROM group_members WHERE user_id = $1`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// GroupsOwnedByWithMember returns groups owned by ownerID that memberID
// belongs to (MembershipIndex)
func (r *PostgresGroupRepo) GroupsOwnedByWithMember(ctx context.Context, ownerID, memberID int64) ([]int64, error) {
	query := `
		SELECT gm.group_id
		FROM group_members gm
		JOIN friend_groups g ON g.id = gm.group_id
		WHERE g.owner_id = $1 AND gm.user_id = $2`

	rows, err := r.db.QueryContext(ctx, query, ownerID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned memberships: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// OwnedGroupIDs returns the subset of groupIDs owned by ownerID
// (posts.GroupDirectory, used for write-time audience validation)
func (r *PostgresGroupRepo) OwnedGroupIDs(ctx context.Context, ownerID int64, groupIDs []int64) ([]int64, error) {
	if len(groupIDs) == 0 {
		return []int64{}, nil
	}

	query := `SELECT id FROM friend_groups WHERE owner_id = $1 AND id = ANY($2)`

	rows, err := r.db.QueryContext(ctx, query, ownerID, pq.Array(groupIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to check group ownership: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

func scanIDs(rows *sql.Rows) ([]int64, error) {
	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
