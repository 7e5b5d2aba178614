package middlewares

import (
	"net/http"
	"strings"

	"github.com/dukahq/duka-api/utils"
	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key the parsed session claims are stored
// under.
const SessionKey = "session"

// SessionCookie is the cookie fallback for browser clients; API clients use
// the Authorization header.
const SessionCookie = "duka_session"

// RequireSession rejects requests without a valid session token and stashes
// the claims in the request context for the controllers.
func RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := ""
		if auth := ctx.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie, err := ctx.Cookie(SessionCookie); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session token required"})
			return
		}

		claims, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid session token"})
			return
		}

		ctx.Set(SessionKey, claims)
		ctx.Next()
	}
}
