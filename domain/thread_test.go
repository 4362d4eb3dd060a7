package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThreadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload domain.NewThread
		wantErr error
	}{
		{
			name:    "valid",
			payload: domain.NewThread{Title: "sebuah thread", Body: "sebuah body thread"},
		},
		{
			name:    "title at the limit",
			payload: domain.NewThread{Title: strings.Repeat("a", 150), Body: "body"},
		},
		{
			name:    "missing title",
			payload: domain.NewThread{Body: "sebuah body thread"},
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "missing body",
			payload: domain.NewThread{Title: "sebuah thread"},
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "whitespace only body",
			payload: domain.NewThread{Title: "sebuah thread", Body: "   "},
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "title too long",
			payload: domain.NewThread{Title: strings.Repeat("a", 151), Body: "body"},
			wantErr: domain.ErrTitleTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewDetailThread(t *testing.T) {
	date := time.Date(2023, 5, 10, 8, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		got, err := domain.NewDetailThread(domain.ThreadRow{
			ID:       "thread-123",
			Title:    "sebuah thread",
			Body:     "sebuah body thread",
			Date:     date,
			Username: "dicoding",
		})
		require.NoError(t, err)
		assert.Equal(t, "thread-123", got.ID)
		assert.Equal(t, "2023-05-10T08:30:00Z", got.Date)
		assert.NotNil(t, got.Comments)
		assert.Empty(t, got.Comments)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := domain.NewDetailThread(domain.ThreadRow{
			ID:    "thread-123",
			Title: "sebuah thread",
			Body:  "sebuah body thread",
			Date:  date,
		})
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := domain.NewDetailThread(domain.ThreadRow{
			ID:       "thread-123",
			Title:    "sebuah thread",
			Body:     "sebuah body thread",
			Username: "dicoding",
		})
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}
