package domain

import (
	"context"
	"strings"
	"time"
)

// Reply domain model. Same soft-delete shape as Comment, scoped to a comment.
type Reply struct {
	ID        string
	Content   string
	CommentID string
	Owner     string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// NewReply carries the fields of a reply about to be created. ThreadID is
// only used for the ancestor existence check.
type NewReply struct {
	Content   string `json:"content"`
	ThreadID  string `json:"-"`
	CommentID string `json:"-"`
	Owner     string `json:"-"`
}

func (r NewReply) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return ErrBadParamInput
	}
	return nil
}

// AddedReply is the creation response entity.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// DeletedReply is returned by a successful soft delete.
type DeletedReply struct {
	ID        string
	DeletedAt time.Time
}

// ReplyRow is the raw read-side row of a reply joined with the author's
// username. CommentID drives the nesting under its parent comment.
type ReplyRow struct {
	ID        string
	CommentID string
	Content   string
	Username  string
	Date      time.Time
	DeletedAt *time.Time
}

// DetailReply is the leaf view inside a DetailComment.
type DetailReply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewDetailReply builds a DetailReply from a raw row, masking the content
// when the reply has been soft deleted.
func NewDetailReply(row ReplyRow) (DetailReply, error) {
	if row.ID == "" || row.Username == "" || row.Date.IsZero() {
		return DetailReply{}, ErrBadParamInput
	}
	return DetailReply{
		ID:       row.ID,
		Content:  MaskDeleted(row.Content, row.DeletedAt, DeletedReplyPlaceholder),
		Date:     row.Date.Format(time.RFC3339),
		Username: row.Username,
	}, nil
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	Store(ctx context.Context, r NewReply) (AddedReply, error)

	// SoftDelete stamps deleted_at on an undeleted reply. Returns
	// ErrNotFound when no undeleted row matches.
	SoftDelete(ctx context.Context, id string) (DeletedReply, error)

	// FetchByCommentIDs returns the replies of all given comments in one
	// batched query, in creation order.
	FetchByCommentIDs(ctx context.Context, commentIDs []string) ([]ReplyRow, error)

	// VerifyOwner returns ErrNotFound if the reply doesn't exist and
	// ErrForbidden if it is owned by someone else.
	VerifyOwner(ctx context.Context, id, owner string) error
}

// ReplyUsecase defines the business logic contract for reply mutations.
// Both operations check the whole ancestor chain: a reply cannot be mutated
// if either the thread or the comment is gone.
type ReplyUsecase interface {
	Store(ctx context.Context, r NewReply) (AddedReply, error)
	Delete(ctx context.Context, threadID, commentID, replyID, owner string) (DeletedReply, error)
}
