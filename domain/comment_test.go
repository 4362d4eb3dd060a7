package domain_test

import (
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommentValidate(t *testing.T) {
	assert.NoError(t, domain.NewComment{Content: "sebuah komentar"}.Validate())
	assert.ErrorIs(t, domain.NewComment{}.Validate(), domain.ErrBadParamInput)
	assert.ErrorIs(t, domain.NewComment{Content: "  "}.Validate(), domain.ErrBadParamInput)
}

func TestNewDetailComment(t *testing.T) {
	date := time.Date(2023, 5, 10, 8, 30, 0, 0, time.UTC)

	t.Run("keeps content of a live comment", func(t *testing.T) {
		got, err := domain.NewDetailComment(domain.CommentRow{
			ID:        "comment-123",
			Content:   "sebuah komentar",
			Username:  "johndoe",
			Date:      date,
			LikeCount: 2,
		})
		require.NoError(t, err)
		assert.Equal(t, "sebuah komentar", got.Content)
		assert.Equal(t, int64(2), got.LikeCount)
		assert.NotNil(t, got.Replies)
		assert.Empty(t, got.Replies)
	})

	t.Run("masks content of a deleted comment", func(t *testing.T) {
		deletedAt := date.Add(time.Hour)
		got, err := domain.NewDetailComment(domain.CommentRow{
			ID:        "comment-123",
			Content:   "sebuah komentar",
			Username:  "johndoe",
			Date:      date,
			DeletedAt: &deletedAt,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DeletedCommentPlaceholder, got.Content)
		// id, date and username stay untouched
		assert.Equal(t, "comment-123", got.ID)
		assert.Equal(t, "johndoe", got.Username)
		assert.Equal(t, date.Format(time.RFC3339), got.Date)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := domain.NewDetailComment(domain.CommentRow{Username: "johndoe", Date: date})
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestMaskDeleted(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "text", domain.MaskDeleted("text", nil, domain.DeletedCommentPlaceholder))
	assert.Equal(t, domain.DeletedCommentPlaceholder,
		domain.MaskDeleted("text", &now, domain.DeletedCommentPlaceholder))
	assert.Equal(t, domain.DeletedReplyPlaceholder,
		domain.MaskDeleted("text", &now, domain.DeletedReplyPlaceholder))
}
