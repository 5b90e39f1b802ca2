package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
)

const testSecret = "test-secret-at-least-16-chars"

func TestIssueValidate_RoundTrip(t *testing.T) {
	clock := clockwork.NewFakeClock()
	svc := NewTokenService(testSecret, 7*24*time.Hour, clock)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestValidate_Expired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	svc := NewTokenService(testSecret, 48*time.Hour, clock)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	// Still valid just before expiry.
	clock.Advance(48*time.Hour - time.Minute)
	_, err = svc.Validate(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	clock := clockwork.NewFakeClock()
	issuer := NewTokenService(testSecret, time.Hour, clock)
	validator := NewTokenService("another-secret-16-chars!", time.Hour, clock)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestValidate_Malformed(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour, clockwork.NewFakeClock())

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}
}

func TestValidate_UniformFailure(t *testing.T) {
	clock := clockwork.NewFakeClock()
	svc := NewTokenService(testSecret, time.Hour, clock)

	expired, err := svc.Issue(uuid.New())
	require.NoError(t, err)
	clock.Advance(2 * time.Hour)

	// Expired and tampered tokens must be indistinguishable to the caller.
	_, expiredErr := svc.Validate(expired)
	_, tamperedErr := svc.Validate(expired + "x")
	assert.Equal(t, expiredErr, tamperedErr)
}
