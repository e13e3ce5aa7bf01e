package auth

import (
	"strconv"
	"testing"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() model.UserDto {
	return model.UserDto{
		UserID:          42,
		Email:           "trader@example.com",
		Username:        "trader",
		Name:            "Test Trader",
		AccountCurrency: "USD",
		DefaultLeverage: 100,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	SecretKey = []byte("test-secret")

	token, err := GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.User.UserID)
	assert.Equal(t, "trader@example.com", claims.User.Email)
	assert.Equal(t, "adforexpre", claims.Issuer)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SecretKey = []byte("test-secret")
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	SecretKey = []byte("other-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	SecretKey = []byte("test-secret")

	claims := &Claims{
		User: testUser(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(42, 10),
			Issuer:  "someone-else",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(SecretKey)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenSubjectMismatch(t *testing.T) {
	SecretKey = []byte("test-secret")

	claims := &Claims{
		User: testUser(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "999",
			Issuer:  "adforexpre",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(SecretKey)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	SecretKey = []byte("test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
