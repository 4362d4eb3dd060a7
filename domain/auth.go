package domain

import (
	"context"
	"time"
)

// TokenPair is what a successful login yields.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthenticationRepository persists issued refresh tokens so they can be
// verified and revoked. Expired rows are swept by a background worker.
type AuthenticationRepository interface {
	Store(ctx context.Context, token string, expiresAt time.Time) error

	// Verify returns ErrNotFound if the token was never issued, is revoked
	// or has expired.
	Verify(ctx context.Context, token string) error

	Delete(ctx context.Context, token string) error

	// DeleteExpired removes tokens that expired before the given time and
	// reports how many rows went away.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
