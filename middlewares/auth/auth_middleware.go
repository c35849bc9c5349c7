package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/models/auth_models"
)

// AuthRequired verifies the token cookie and attaches the decoded identity to
// the request context. A missing, invalid or expired token aborts with 401;
// signature mismatch and expiry are not distinguished to the caller.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth_models.TokenCookieName)
		if err != nil || tokenString == "" {
			logger.WarnLogger.Warn("No token cookie on protected route")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
			return
		}

		claims, err := auth_models.VerifyToken(tokenString)
		if err != nil {
			logger.WarnLogger.Warnf("Token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		auth_models.SetAuthUser(c, claims)
		c.Next()
	}
}
