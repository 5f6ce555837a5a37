package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated
// user's ID is stored for downstream handlers.
const ContextUserID = "userID"

// bearerPrefix is the exact scheme prefix required in the
// Authorization header, single space included.
const bearerPrefix = "Bearer "

// AuthRequired returns a Gin middleware that validates the bearer token on
// the request and restricts access to authenticated users only. The
// verifier carries the signing secret; nothing is read from the
// environment during request handling.
func AuthRequired(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, bearerPrefix)

		// 2. Verify structure, signature and expiry
		claims, err := v.VerifyToken(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenMalformed), errors.Is(err, ErrSignatureInvalid):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			case errors.Is(err, ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		// 3. Attach the identity to the request context and continue
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
