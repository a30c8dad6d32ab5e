package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/stakeway/backoffice/internal/domain/error"
	coremocks "github.com/stakeway/backoffice/mocks/port/core"
)

func TestJWTAuthorizer_Login(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.FixedTimeProvider{Fixed: fixedTime}

	authorizer := NewJWTAuthorizer("admin", "s3cret", "signing-key", 24*time.Hour, timeProvider)

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		token, err := authorizer.Login("admin", "s3cret")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		token, err := authorizer.Login("admin", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("should reject a wrong username", func(t *testing.T) {
		token, err := authorizer.Login("root", "s3cret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("should reject empty credentials", func(t *testing.T) {
		token, err := authorizer.Login("", "")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}

func TestJWTAuthorizer_Verify(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	timeProvider := coremocks.FixedTimeProvider{Fixed: fixedTime}

	authorizer := NewJWTAuthorizer("admin", "s3cret", "signing-key", 24*time.Hour, timeProvider)

	t.Run("should round-trip a freshly issued token", func(t *testing.T) {
		token, err := authorizer.Login("admin", "s3cret")
		require.NoError(t, err)

		username, err := authorizer.Verify(token)

		assert.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("should reject a token past its TTL", func(t *testing.T) {
		token, err := authorizer.Login("admin", "s3cret")
		require.NoError(t, err)

		// Same secret, clock moved past the 24-hour expiry.
		later := coremocks.FixedTimeProvider{Fixed: fixedTime.Add(25 * time.Hour)}
		expired := NewJWTAuthorizer("admin", "s3cret", "signing-key", 24*time.Hour, later)

		username, verifyErr := expired.Verify(token)

		assert.ErrorIs(t, verifyErr, errs.ErrInvalidToken)
		assert.Empty(t, username)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		other := NewJWTAuthorizer("admin", "s3cret", "other-key", 24*time.Hour, timeProvider)
		token, err := other.Login("admin", "s3cret")
		require.NoError(t, err)

		username, verifyErr := authorizer.Verify(token)

		assert.ErrorIs(t, verifyErr, errs.ErrInvalidToken)
		assert.Empty(t, username)
	})

	t.Run("should reject garbage input", func(t *testing.T) {
		username, err := authorizer.Verify("not.a.token")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		assert.Empty(t, username)
	})

	t.Run("should reject an empty token", func(t *testing.T) {
		username, err := authorizer.Verify("")

		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		assert.Empty(t, username)
	})
}
