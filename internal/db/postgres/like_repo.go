package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"PickMe/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Upsert inserts the like if absent
// Single statement on the composite key: concurrent duplicate likes race
// down to one row with exactly one caller seeing created=true.
func (r *postgresLikeRepo) Upsert(ctx context.Context, userID, postID int64) (bool, error) {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		if strings.Contains(err.Error(), "likes_post_id_fkey") {
			return false, likes.ErrPostNotFound
		}
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check like result: %w", err)
	}

	return affected > 0, nil
}

// Delete removes the like if present
func (r *postgresLikeRepo) Delete(ctx context.Context, userID, postID int64) (bool, error) {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check unlike result: %w", err)
	}

	return affected > 0, nil
}

// CountForPost returns the like count for a post
func (r *postgresLikeRepo) CountForPost(ctx context.Context, postID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// ListForPost returns likers ordered by like creation time descending
func (r *postgresLikeRepo) ListForPost(ctx context.Context, postID int64) ([]likes.LikerView, error) {
	query := `
		SELECT u.id, u.username, u.bio, u.avatar_url, l.created_at
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.post_id = $1
		ORDER BY l.created_at DESC, u.id DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}
	defer rows.Close()

	likers := []likes.LikerView{}
	for rows.Next() {
		var v likes.LikerView
		var avatarURL sql.NullString
		if err := rows.Scan(&v.User.ID, &v.User.Username, &v.User.Bio, &avatarURL, &v.LikedAt); err != nil {
			return nil, fmt.Errorf("failed to scan liker: %w", err)
		}
		if avatarURL.Valid {
			v.User.AvatarURL = &avatarURL.String
		}
		likers = append(likers, v)
	}

	return likers, rows.Err()
}
