package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourname/moodjournal/internal"
	"github.com/yourname/moodjournal/internal/config"
	"github.com/yourname/moodjournal/internal/response"
)

const UserKey = "user"

// NewProvider picks the provider named by cfg.AuthMode.
func NewProvider(cfg *config.Config, logger internal.Logger) Provider {
	if cfg.AuthMode == "remote" {
		return NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}
	return NewLocalAuthProvider(cfg.AuthToken, cfg.AuthUserID, logger)
}

func AuthMiddleware(provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			user, err := provider.ValidateToken(c.Request.Context(), token)
			if err == nil {
				c.Set(UserKey, user)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
	}
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) *internal.User {
	return c.MustGet(UserKey).(*internal.User)
}
