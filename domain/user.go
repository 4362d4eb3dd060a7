package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, and perform actions like posting threads.
type User struct {
	ID        string    // Unique identifier, prefixed "user-"
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	Fullname  string    // Display name
	CreatedAt time.Time // Account creation timestamp
}

// AddedUser is the registration response entity.
type AddedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// Insert creates a new user account.
	Insert(ctx context.Context, u *User) error

	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
// Handles authentication and registration.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, username, password, fullname string) (AddedUser, error)

	// Login verifies user credentials and returns a token pair. The refresh
	// token is persisted so it can be revoked.
	// Returns ErrNotFound if the user doesn't exist.
	// Returns ErrBadParamInput if the password is incorrect.
	Login(ctx context.Context, username, password string) (TokenPair, error)

	// Refresh exchanges a stored refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Logout revokes a stored refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
