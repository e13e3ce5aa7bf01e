package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOtp returns a zero-padded numeric code of the given length,
// drawn from crypto/rand.
func GenerateOtp(length int) (string, error) {
	if length <= 0 || length > 18 {
		return "", fmt.Errorf("otp length out of range: %d", length)
	}

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate secure random number: %w", err)
	}

	return fmt.Sprintf("%0*d", length, n.Int64()), nil
}
