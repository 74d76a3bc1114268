package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"PickMe/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, bio, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Bio, user.AvatarURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		// Map unique constraint violations to domain errors
		if strings.Contains(err.Error(), "duplicate key") {
			if strings.Contains(err.Error(), "users_username_key") {
				return nil, users.ErrUsernameTaken
			}
			if strings.Contains(err.Error(), "users_email_key") {
				return nil, users.ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	query := `
		SELECT id, username, email, password_hash, bio, avatar_url, created_at, updated_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email (login path)
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `
		SELECT id, username, email, password_hash, bio, avatar_url, created_at, updated_at
		FROM users
		WHERE email = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// Search finds users whose username or email matches the query
func (r *postgresUserRepo) Search(ctx context.Context, query string, limit int) ([]users.UserView, error) {
	sqlQuery := `
		SELECT id, username, bio, avatar_url
		FROM users
		WHERE username ILIKE $1 OR email ILIKE $1
		ORDER BY username
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, sqlQuery, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	views := []users.UserView{}
	for rows.Next() {
		var v users.UserView
		var avatarURL sql.NullString
		if err := rows.Scan(&v.ID, &v.Username, &v.Bio, &avatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user search row: %w", err)
		}
		if avatarURL.Valid {
			v.AvatarURL = &avatarURL.String
		}
		views = append(views, v)
	}

	return views, rows.Err()
}

// Update persists bio/avatar changes
func (r *postgresUserRepo) Update(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		UPDATE users
		SET bio = $2, avatar_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, user.ID, user.Bio, user.AvatarURL).
		Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepo) scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	var avatarURL sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Bio, &avatarURL, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	if avatarURL.Valid {
		user.AvatarURL = &avatarURL.String
	}

	return user, nil
}
