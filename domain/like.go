package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record. At most one row exists per
// (comment, user) pair; the toggle usecase reads before it writes, there is
// no uniqueness constraint backing this up.
type CommentLike struct {
	ID        string // Unique identifier, prefixed "commentlike-"
	CommentID string
	Owner     string
	CreatedAt time.Time
}

// CommentLikeRepository defines the contract for like persistence. Likes are
// the only rows this service physically inserts and removes.
type CommentLikeRepository interface {
	Store(ctx context.Context, commentID, owner string) error
	Delete(ctx context.Context, commentID, owner string) error
	IsLiked(ctx context.Context, commentID, owner string) (bool, error)
}
