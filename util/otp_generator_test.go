package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOtp(t *testing.T) {
	otp, err := GenerateOtp(6)
	require.NoError(t, err)
	require.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "otp must be numeric, got %q", otp)
	}
}

func TestGenerateOtpLengthBounds(t *testing.T) {
	_, err := GenerateOtp(0)
	assert.Error(t, err)

	_, err = GenerateOtp(19)
	assert.Error(t, err)

	otp, err := GenerateOtp(4)
	require.NoError(t, err)
	assert.Len(t, otp, 4)
}
