package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/golang-jwt/jwt/v5"
)

var SecretKey = []byte("")

const issuer = "adforexpre"

// SessionCookie carries the signed session token.
const SessionCookie = "adfx_session"

// SessionTTL is the token lifetime; RefreshWindow is how close to expiry
// a request must be before the middleware re-issues the cookie.
const (
	SessionTTL    = 45 * time.Minute
	RefreshWindow = 20 * time.Minute
)

type Claims struct {
	User model.UserDto `json:"user"`
	jwt.RegisteredClaims
}

func GenerateToken(user model.UserDto) (string, error) {
	now := time.Now()
	expirationTime := now.Add(SessionTTL)

	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(user.UserID, 10),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(SecretKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return SecretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	if claims.Issuer != issuer {
		return nil, fmt.Errorf("invalid issuer")
	}

	expectedSub := strconv.FormatInt(claims.User.UserID, 10)
	if claims.Subject != expectedSub {
		return nil, fmt.Errorf("subject mismatch: identity integrity compromised")
	}

	return claims, nil
}
