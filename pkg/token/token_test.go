package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec("test-secret", time.Hour)
	require.NoError(t, err)
	return codec
}

func TestNewCodecRequiresSecret(t *testing.T) {
	_, err := NewCodec("", time.Hour)
	assert.Error(t, err)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	signed, err := codec.Issue(42, "jane@example.com", "customer", 0)
	require.NoError(t, err)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyExpiredToken(t *testing.T) {
	codec := newTestCodec(t)

	// A non-positive ttl falls back to the codec default, so build an
	// expired token by hand with the same secret.
	claims := Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenAtExactExpiryInstant(t *testing.T) {
	codec := newTestCodec(t)

	// Validity is strictly before exp. A token whose exp equals the
	// current instant is already rejected, not accepted as a last use.
	now := time.Now()
	claims := Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewCodec("different-secret", time.Hour)
	require.NoError(t, err)

	signed, err := other.Issue(42, "jane@example.com", "customer", 0)
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	codec := newTestCodec(t)

	claims := Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTamperedToken(t *testing.T) {
	codec := newTestCodec(t)

	signed, err := codec.Issue(42, "jane@example.com", "customer", 0)
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	codec := newTestCodec(t)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Verify(input)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	codec := newTestCodec(t)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
