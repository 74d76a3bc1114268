package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"PickMe/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// postViewSelect is the shared projection for enriched post views
// $1 is always the viewer ID (for the liked flag)
const postViewSelect = `
	SELECT
		p.id, p.author_id, p.content_type, p.text_content,
		p.media_url, p.media_type, p.audience,
		p.created_at, p.updated_at,
		u.username, u.bio, u.avatar_url,
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
		EXISTS (SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = $1) AS liked
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// Create inserts the post and its audience group set in one transaction
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (author_id, content_type, text_content, media_url, media_type, audience)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		post.AuthorID, post.ContentType, post.TextContent,
		post.MediaURL, post.MediaType, string(post.Audience),
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	if err := insertAudienceGroups(ctx, tx, post.ID, post.AudienceGroupIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post with its audience group IDs, no visibility applied
func (r *postgresPostRepo) GetByID(ctx context.Context, postID int64) (*posts.Post, error) {
	query := `
		SELECT id, author_id, content_type, text_content, media_url, media_type,
			audience, created_at, updated_at
		FROM posts
		WHERE id = $1`

	post := &posts.Post{}
	err := r.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID, &post.AuthorID, &post.ContentType, &post.TextContent,
		&post.MediaURL, &post.MediaType, &post.Audience,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	groupIDs, err := r.audienceGroupIDs(ctx, []int64{post.ID})
	if err != nil {
		return nil, err
	}
	post.AudienceGroupIDs = groupIDs[post.ID]

	return post, nil
}

// GetView retrieves an enriched post view, no visibility applied
func (r *postgresPostRepo) GetView(ctx context.Context, postID, viewerID int64) (*posts.PostView, error) {
	query := postViewSelect + ` WHERE p.id = $2`

	row := r.db.QueryRowContext(ctx, query, viewerID, postID)
	view, err := scanPostView(row)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	groupIDs, err := r.audienceGroupIDs(ctx, []int64{view.ID})
	if err != nil {
		return nil, err
	}
	view.AudienceGroupIDs = groupIDs[view.ID]
	view.IsOwn = view.AuthorID == viewerID

	return view, nil
}

// ListVisible returns enriched posts matching the visibility filter,
// newest first. The filter is rendered by visibleWhereClause so every feed
// variant shares the one predicate.
func (r *postgresPostRepo) ListVisible(ctx context.Context, filter posts.VisibilityFilter, limit, offset int) ([]*posts.PostView, error) {
	// $1 = viewer (liked flag), filter params start at $2
	where, filterArgs := visibleWhereClause(filter, 2)
	next := 2 + len(filterArgs)

	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $%d OFFSET $%d`, postViewSelect, where, next, next+1)

	args := append([]interface{}{filter.ViewerID}, filterArgs...)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query visible posts: %w", err)
	}
	defer rows.Close()

	views := []*posts.PostView{}
	ids := []int64{}
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post view: %w", err)
		}
		view.IsOwn = view.AuthorID == filter.ViewerID
		views = append(views, view)
		ids = append(ids, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	groupIDs, err := r.audienceGroupIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		view.AudienceGroupIDs = groupIDs[view.ID]
	}

	return views, nil
}

// Update persists content/audience changes, replacing the audience group set
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE posts
		SET text_content = $2, media_url = $3, media_type = $4, audience = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err = tx.QueryRowContext(ctx, query,
		post.ID, post.TextContent, post.MediaURL, post.MediaType, string(post.Audience),
	).Scan(&post.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_audience_groups WHERE post_id = $1`, post.ID); err != nil {
		return nil, fmt.Errorf("failed to clear audience groups: %w", err)
	}
	if err := insertAudienceGroups(ctx, tx, post.ID, post.AudienceGroupIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post update: %w", err)
	}

	return post, nil
}

// Delete removes a post; audience references and likes cascade
func (r *postgresPostRepo) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// audienceGroupIDs loads the audience group sets for a batch of posts
func (r *postgresPostRepo) audienceGroupIDs(ctx context.Context, postIDs []int64) (map[int64][]int64, error) {
	result := make(map[int64][]int64, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	query := `SELECT post_id, group_id FROM post_audience_groups WHERE post_id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load audience groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID, groupID int64
		if err := rows.Scan(&postID, &groupID); err != nil {
			return nil, fmt.Errorf("failed to scan audience group: %w", err)
		}
		result[postID] = append(result[postID], groupID)
	}

	return result, rows.Err()
}

func insertAudienceGroups(ctx context.Context, tx *sql.Tx, postID int64, groupIDs []int64) error {
	for _, groupID := range groupIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO post_audience_groups (post_id, group_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, groupID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach audience group %d: %w", groupID, err)
		}
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows for the shared view projection
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPostView(s scanner) (*posts.PostView, error) {
	view := &posts.PostView{}
	var avatarURL sql.NullString

	err := s.Scan(
		&view.ID, &view.AuthorID, &view.ContentType, &view.TextContent,
		&view.MediaURL, &view.MediaType, &view.Audience,
		&view.CreatedAt, &view.UpdatedAt,
		&view.Author.Username, &view.Author.Bio, &avatarURL,
		&view.LikeCount, &view.Liked,
	)
	if err != nil {
		return nil, err
	}

	view.Author.ID = view.AuthorID
	if avatarURL.Valid {
		view.Author.AvatarURL = &avatarURL.String
	}

	return view, nil
}
