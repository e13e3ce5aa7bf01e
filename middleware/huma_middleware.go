package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Ebesoh-Adrian/ADForexPre/auth"

	"github.com/danielgtaylor/huma/v2"
)

// HumaAuthMiddleware guards huma operations with the same cookie
// session the gin routes use, including the sliding refresh.
func HumaAuthMiddleware(api huma.API, isProduction bool) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := sessionTokenFromHeader(ctx.Header("Cookie"))
		if token == "" {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Invalid session")
			return
		}

		if time.Until(claims.ExpiresAt.Time) < auth.RefreshWindow {
			newToken, _ := auth.GenerateToken(claims.User)
			cookie := http.Cookie{
				Name:     auth.SessionCookie,
				Value:    newToken,
				Path:     "/",
				MaxAge:   int(auth.SessionTTL.Seconds()),
				Secure:   isProduction,
				HttpOnly: true,
			}
			ctx.SetHeader("Set-Cookie", cookie.String())
		}

		ctx = huma.WithValue(ctx, "user", claims.User)
		next(ctx)
	}
}

func sessionTokenFromHeader(cookieHeader string) string {
	prefix := auth.SessionCookie + "="
	for part := range strings.SplitSeq(cookieHeader, ";") {
		part = strings.TrimSpace(part)
		if after, ok := strings.CutPrefix(part, prefix); ok {
			return after
		}
	}
	return ""
}
