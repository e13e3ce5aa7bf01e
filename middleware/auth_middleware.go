package middleware

import (
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/auth"
	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid session"})
			return
		}

		// Sliding expiry: re-issue the cookie once the token nears expiry
		if time.Until(claims.ExpiresAt.Time) < auth.RefreshWindow {
			newToken, _ := auth.GenerateToken(claims.User)
			c.SetCookie(auth.SessionCookie, newToken, int(auth.SessionTTL.Seconds()), "/", "", isProduction, true)
		}

		c.Set("user", claims.User)
		c.Next()
	}
}

// GetUser extracts the session DTO placed by AuthMiddleware.
func GetUser(c *gin.Context) (model.UserDto, bool) {
	val, exists := c.Get("user")
	if !exists {
		return model.UserDto{}, false
	}

	user, ok := val.(model.UserDto)
	return user, ok
}
