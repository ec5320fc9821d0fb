package usecase

import (
	"testing"
	"time"

	authdomain "chat-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-length"

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer("", 7*24*time.Hour)
	require.Error(t, err)
}

func TestTokenIssuer_Lifetime(t *testing.T) {
	req := require.New(t)
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer, err := NewTokenIssuer(testSecret, 7*24*time.Hour)
	req.NoError(err)
	issuer.WithClock(clock.Now)

	token, expiresAt, err := issuer.Issue("user-1")
	req.NoError(err)
	req.Equal(clock.t.Add(7*24*time.Hour), expiresAt)

	clock.t = clock.t.Add(6 * 24 * time.Hour)
	userID, err := issuer.Verify(token)
	req.NoError(err)
	req.Equal("user-1", userID)

	clock.t = clock.t.Add(2 * 24 * time.Hour) // T+8d
	_, err = issuer.Verify(token)
	req.ErrorIs(err, authdomain.ErrInvalidToken)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	req := require.New(t)
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	req.NoError(err)
	other, err := NewTokenIssuer("another-secret-of-enough-length", time.Hour)
	req.NoError(err)

	token, _, err := other.Issue("user-1")
	req.NoError(err)

	_, err = issuer.Verify(token)
	req.ErrorIs(err, authdomain.ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbageAndAlgSwap(t *testing.T) {
	req := require.New(t)
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	req.NoError(err)

	_, err = issuer.Verify("not-a-token")
	req.ErrorIs(err, authdomain.ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)
	_, err = issuer.Verify(unsigned)
	req.ErrorIs(err, authdomain.ErrInvalidToken)
}

func TestTokenIssuer_RequiresSubject(t *testing.T) {
	req := require.New(t)
	issuer, err := NewTokenIssuer(testSecret, time.Hour)
	req.NoError(err)

	token, _, err := issuer.Issue("")
	req.NoError(err)
	_, err = issuer.Verify(token)
	req.ErrorIs(err, authdomain.ErrInvalidToken)
}
