package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/constant"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/bininfo"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
	"github.com/ganeshsankaran/curve-surfer/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// probes hit this often; one real ping per second is enough
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"service": constant.ServiceName,
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// Health answers 200 only when both Postgres and Redis respond.
func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status":   "ok",
		"postgres": "ok",
		"redis":    "ok",
	})
}
