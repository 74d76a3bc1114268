package users

import (
	"context"
	"strings"
)

const (
	maxUsernameLength  = 150
	maxBioLength       = 500
	minPasswordLength  = 8
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// Register creates a new account
// Flow: validate input -> hash password -> insert (uniqueness enforced by DB)
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" {
		return nil, NewValidationError("username", "username is required")
	}
	if len(username) > maxUsernameLength {
		return nil, NewValidationError("username", "username is too long")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, NewValidationError("password", "password must be at least 8 characters")
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	return s.repo.Create(ctx, user)
}

// Authenticate verifies an email/password pair
// All failure modes collapse into ErrInvalidCredentials so a caller cannot
// probe which emails are registered
func (s *userService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err == ErrUserNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := verifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Search(ctx context.Context, query string, limit int) ([]UserView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []UserView{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	return s.repo.Search(ctx, query, limit)
}

// UpdateProfile applies a partial update to the caller's own profile
func (s *userService) UpdateProfile(ctx context.Context, callerID, userID int64, req UpdateProfileRequest) (*User, error) {
	if callerID != userID {
		return nil, ErrNotAuthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Bio != nil {
		if len(*req.Bio) > maxBioLength {
			return nil, NewValidationError("bio", "bio must be at most 500 characters")
		}
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}

	return s.repo.Update(ctx, user)
}
