package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatNumber(1234.5, 2))
	assert.Equal(t, "0.0001", FormatNumber(0.0001, 4))
	assert.Equal(t, "100,000.00", FormatNumber(100000, 2))
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1234.5, "USD")
	assert.Contains(t, got, "1,234.50")

	// unknown code falls back to a bare number
	assert.Equal(t, "42.00", FormatCurrency(42, "???"))
}
