package middlewares

import (
	"net/http"
	"strings"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VivXwan/astrology-app/internal/ports/usecase"
)

// UserIDKey ключ в gin.Context, под которым лежит uuid аутентифицированного пользователя
const UserIDKey = "user_id"

// Auth проверяет Bearer-токен и кладёт user_id в контекст запроса
func Auth(auth usecase.IAuthUsecase, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		userID, err := auth.ParseAccessToken(token)
		if err != nil {
			log.Debug("access token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID достаёт uuid пользователя, положенный middleware Auth
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
