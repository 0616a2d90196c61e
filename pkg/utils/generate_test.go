package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", code)
	}
}

func TestGenerateOTPDefaultsLength(t *testing.T) {
	code, err := GenerateOTP(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)
}

func TestGeneratePaymentReference(t *testing.T) {
	ref := GeneratePaymentReference()
	assert.True(t, strings.HasPrefix(ref, "PAY-"), "reference %q should carry the PAY prefix", ref)

	parts := strings.Split(ref, "-")
	require.Len(t, parts, 4)
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
	assert.Len(t, parts[3], 4)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestBurnPasswordCheckDoesNotPanic(t *testing.T) {
	BurnPasswordCheck("anything")
}
