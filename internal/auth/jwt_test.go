package auth_test

import (
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := auth.New([]byte("secret"))

	token, err := j.NewToken("user-123", time.Hour, time.Now())
	require.NoError(t, err)

	userID, err := j.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTExpired(t *testing.T) {
	j := auth.New([]byte("secret"))

	token, err := j.NewToken("user-123", time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = j.Decode(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := auth.New([]byte("secret")).NewToken("user-123", time.Hour, time.Now())
	require.NoError(t, err)

	_, err = auth.New([]byte("other")).Decode(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestJWTGarbage(t *testing.T) {
	_, err := auth.New([]byte("secret")).Decode("not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
