package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsankaran/curve-surfer/internal/constant"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cserr"
)

// AdminAuth guards a route group behind a static key. An empty key rejects every request.
func AdminAuth(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return cserr.ErrUnauthorized.Msg("admin API is disabled")
		}

		provided, found := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), constant.AdminAuthorizationRealm+" ")
		if !found || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(provided)), []byte(key)) != 1 {
			return cserr.ErrUnauthorized
		}

		return c.Next()
	}
}
