package users

import "time"

// User represents an account in the database
// The password hash is never serialized; public views go through UserView
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Bio          string    `json:"bio" db:"bio"`
	AvatarURL    *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	ID           int64     `json:"id" db:"id"`
}

// UserView is the public projection of a user (search results, post authors,
// group member listings). Email is intentionally omitted.
type UserView struct {
	Username  string  `json:"username"`
	Bio       string  `json:"bio"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	ID        int64   `json:"id"`
}

// View returns the public projection of the user
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}

// RegisterRequest represents input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update
// Nil fields are left unchanged
type UpdateProfileRequest struct {
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}
