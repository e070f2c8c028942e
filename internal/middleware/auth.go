package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agora-forum/agora/pkg/auth"
)

const UserIDKey = "userID"

// RequireAuth rejects requests without a valid, non-revoked token and
// stores the caller's user id on the context. A blacklist outage surfaces
// as 503 rather than 401.
func RequireAuth(jwtManager *auth.JWTManager, blacklist auth.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			c.Abort()
			return
		}

		blacklisted, err := blacklist.Contains(c.Request.Context(), token)
		if err != nil {
			logrus.WithError(err).Error("auth: blacklist check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session verification unavailable"})
			c.Abort()
			return
		}
		if blacklisted {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is blacklisted"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
