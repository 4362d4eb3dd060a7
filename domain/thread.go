package domain

import (
	"context"
	"strings"
	"time"
)

// TitleMaxLen is the upper bound for a thread title, in characters.
const TitleMaxLen = 150

// Thread is representing the persisted thread record.
// Threads are immutable after creation and are never deleted.
type Thread struct {
	ID        string    // Unique identifier, prefixed "thread-"
	Title     string    // Thread title, at most TitleMaxLen characters
	Body      string    // Thread body content
	Owner     string    // User id of the author
	CreatedAt time.Time // Creation timestamp
}

// NewThread carries the user-provided fields of a thread about to be created.
type NewThread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Validate enforces the required fields and the title length limit.
func (t NewThread) Validate() error {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Body) == "" {
		return ErrBadParamInput
	}
	if len([]rune(t.Title)) > TitleMaxLen {
		return ErrTitleTooLong
	}
	return nil
}

// AddedThread is the creation response entity. No timestamps on purpose.
type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadRow is the raw read-side row of a thread joined with its owner's
// display name. Built by the repository, consumed by the aggregation usecase.
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// DetailThread is the fully aggregated thread view. It is transient and
// rebuilt on every read.
type DetailThread struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []DetailComment `json:"comments"`
}

// NewDetailThread builds a DetailThread from a raw row. The timestamp is
// rendered as RFC 3339 and Comments defaults to an empty slice.
func NewDetailThread(row ThreadRow) (DetailThread, error) {
	if row.ID == "" || row.Title == "" || row.Body == "" || row.Username == "" || row.Date.IsZero() {
		return DetailThread{}, ErrBadParamInput
	}
	return DetailThread{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date.Format(time.RFC3339),
		Username: row.Username,
		Comments: []DetailComment{},
	}, nil
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// Store creates a new thread owned by the given user.
	Store(ctx context.Context, t NewThread, owner string) (AddedThread, error)

	// GetByID retrieves a thread row joined with the owner's username.
	// Returns ErrNotFound if the thread doesn't exist.
	GetByID(ctx context.Context, id string) (ThreadRow, error)

	// VerifyAvailability returns ErrNotFound if the thread doesn't exist.
	VerifyAvailability(ctx context.Context, id string) error
}

// ThreadUsecase defines the business logic contract for threads.
type ThreadUsecase interface {
	Store(ctx context.Context, t NewThread, owner string) (AddedThread, error)

	// GetByID assembles the full thread view: comments in creation order,
	// replies nested under their comment, deleted content masked.
	GetByID(ctx context.Context, id string) (DetailThread, error)
}
