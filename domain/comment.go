package domain

import (
	"context"
	"strings"
	"time"
)

// Comment domain model. DeletedAt marks soft deletion; the row is kept and
// its content is masked at read time.
type Comment struct {
	ID        string
	Content   string
	ThreadID  string
	Owner     string
	CreatedAt time.Time
	DeletedAt *time.Time
}

// NewComment carries the fields of a comment about to be created.
// ThreadID and Owner come from the request path and credentials.
type NewComment struct {
	Content  string `json:"content"`
	ThreadID string `json:"-"`
	Owner    string `json:"-"`
}

func (c NewComment) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrBadParamInput
	}
	return nil
}

// AddedComment is the creation response entity.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// DeletedComment is returned by a successful soft delete.
type DeletedComment struct {
	ID        string
	DeletedAt time.Time
}

// CommentRow is the raw read-side row of a comment joined with the author's
// username and its like count.
type CommentRow struct {
	ID        string
	Content   string
	Username  string
	Date      time.Time
	DeletedAt *time.Time
	LikeCount int64
}

// DetailComment is the comment view inside a DetailThread.
type DetailComment struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []DetailReply `json:"replies"`
}

// NewDetailComment builds a DetailComment from a raw row, masking the content
// when the comment has been soft deleted. Replies defaults to an empty slice.
func NewDetailComment(row CommentRow) (DetailComment, error) {
	if row.ID == "" || row.Username == "" || row.Date.IsZero() {
		return DetailComment{}, ErrBadParamInput
	}
	return DetailComment{
		ID:        row.ID,
		Username:  row.Username,
		Date:      row.Date.Format(time.RFC3339),
		Content:   MaskDeleted(row.Content, row.DeletedAt, DeletedCommentPlaceholder),
		LikeCount: row.LikeCount,
		Replies:   []DetailReply{},
	}, nil
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	Store(ctx context.Context, c NewComment) (AddedComment, error)

	// SoftDelete stamps deleted_at on an undeleted comment. Returns
	// ErrNotFound when no undeleted row matches, so deleting twice fails.
	SoftDelete(ctx context.Context, id string) (DeletedComment, error)

	// FetchByThreadID returns every comment of a thread, deleted ones
	// included, in creation order.
	FetchByThreadID(ctx context.Context, threadID string) ([]CommentRow, error)

	// VerifyAvailability returns ErrNotFound if the comment doesn't exist
	// or is already deleted.
	VerifyAvailability(ctx context.Context, id string) error

	// VerifyOwner returns ErrNotFound if the comment doesn't exist and
	// ErrForbidden if it is owned by someone else.
	VerifyOwner(ctx context.Context, id, owner string) error
}

// CommentUsecase defines the business logic contract for comment mutations.
type CommentUsecase interface {
	Store(ctx context.Context, c NewComment) (AddedComment, error)
	Delete(ctx context.Context, threadID, commentID, owner string) (DeletedComment, error)

	// ToggleLike likes the comment when the user has not liked it yet and
	// unlikes it otherwise.
	ToggleLike(ctx context.Context, threadID, commentID, owner string) error
}
