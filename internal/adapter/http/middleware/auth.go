package middleware

import (
	"net/http"
	"strings"

	"kiosk_quote/internal/config"
	"kiosk_quote/internal/infrastructure/auth"
	"kiosk_quote/pkg"
	"kiosk_quote/pkg/logger"

	"github.com/gin-gonic/gin"
)

var errInvalidOperatorToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid operator token", http.StatusUnauthorized)

// OperatorAuth attaches the signed-in operator to the request context. Kiosks
// are usable anonymously, so a missing header passes through; a present but
// invalid token is rejected. With no JWT secret configured the middleware is a
// no-op.
func OperatorAuth(cfg config.AuthConfig, log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *gin.Context) {
		if cfg.JWTSecret == "" {
			c.Next()
			return
		}
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.Next()
			return
		}
		token := raw
		if strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[7:])
		}

		ctx := c.Request.Context()
		claims, err := auth.ParseOperatorToken(cfg, token)
		if err != nil {
			log.Warn(ctx, "[kiosk][http] operator token rejected err="+err.Error())
			c.AbortWithStatusJSON(errInvalidOperatorToken.HTTPStatus, errInvalidOperatorToken.ToHTTPError())
			return
		}

		ctx = auth.WithUserID(ctx, claims.UserID)
		ctx = log.WithField(ctx, "user_id", claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
