package middlewares

import (
	"net/http"
	"strings"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys for the verified claims, consumed by the proxy when it
// rewrites the forwarded request.
const (
	CtxSubject = "sub"
	CtxRole    = "role"
)

// Authentication validates the bearer token on every request except those
// under a public path prefix. The prefix check runs before any token
// inspection so unauthenticated clients can reach login, registration and
// health. All failures are an opaque 401; the actual reason only goes to
// the log.
func Authentication(tm *auth.TokenManager, log *zap.Logger, publicPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range publicPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		claims, err := tm.ValidateBearer(c.GetHeader("Authorization"))
		if err != nil {
			log.Info("token rejected", zap.String("path", path), zap.Error(err))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(CtxSubject, claims.Sub)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}
