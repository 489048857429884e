package middlewares

import (
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsankaran/curve-surfer/internal/constant"
)

// EnrichSentry tags the request hub with the request id and the report filter, if any.
func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(constant.SlimHeaderKey) != "" {
			return c.Next()
		}

		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			scope := hub.Scope()
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				scope.SetTag("request_id", id)
			}
			for _, key := range []string{"dept", "cnum", "instr", "qtr"} {
				if v := c.Query(key); v != "" {
					scope.SetTag("filter."+key, v)
				}
			}
		}

		return c.Next()
	}
}
