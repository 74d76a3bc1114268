package users

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates a new account after validating the request
	// Username and email uniqueness is enforced by the repository
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies an email/password pair
	// Returns ErrInvalidCredentials on any mismatch (token minting is the
	// API layer's concern)
	Authenticate(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// Search finds users whose username or email matches the query
	Search(ctx context.Context, query string, limit int) ([]UserView, error)

	// UpdateProfile applies a partial profile update
	// Only the account owner may update; callerID must equal userID
	UpdateProfile(ctx context.Context, callerID, userID int64, req UpdateProfileRequest) (*User, error)
}

// Repository defines the data access interface for accounts
type Repository interface {
	// Create inserts a new user and fills in ID and timestamps
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByEmail retrieves a user by email (login path)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Search finds users matching the query, ordered by username
	Search(ctx context.Context, query string, limit int) ([]UserView, error)

	// Update persists bio/avatar changes
	Update(ctx context.Context, user *User) (*User, error)
}
