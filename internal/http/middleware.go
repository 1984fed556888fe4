package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"todo-server/internal/auth"
	"todo-server/internal/domain"
	"todo-server/internal/repository"
	"todo-server/internal/service"
)

const userContextKey = "authUser"

// authRequired gates every protected route. It extracts the bearer token,
// verifies it, and resolves the subject to a live user before the handler
// runs. Any failure aborts with 401.
func authRequired(tokens *auth.TokenManager, users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			abortUnauthenticated(c)
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				abortUnauthenticated(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate."})
}

// userFromContext returns the user resolved by authRequired.
func userFromContext(c *gin.Context) *domain.User {
	user, _ := c.Get(userContextKey)
	resolved, _ := user.(*domain.User)
	return resolved
}

// requestLogger tags each request with a generated id and logs method, path,
// status and latency on completion.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("requestID", requestID)

		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request completed")
	}
}
