package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"usdt_banc/internal/auth" // Session token issuer

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Context keys set for downstream handlers.
const (
	ContextAccountID = "accountID"
	ContextEmail     = "email"
)

// JWTAuthMiddleware validates bearer tokens and puts the caller's identity in
// the request context. Expired, malformed and badly signed tokens are all
// rejected with 401; the distinction only shows up in the server-side log.
func JWTAuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":   c.FullPath(),
				"reason": err.Error(),
			}).Debug("Token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}
