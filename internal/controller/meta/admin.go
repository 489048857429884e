package meta

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/ganeshsankaran/curve-surfer/internal/model/cache"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cachectrl"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cserr"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
	"github.com/ganeshsankaran/curve-surfer/internal/util/rekuest"
)

type PurgeCacheRequest struct {
	// Name of the cache to flush. Empty flushes every cache.
	Name string `json:"name" validate:"max=64"`
}

type Admin struct{}

func RegisterAdmin(admin *svr.Admin) {
	c := &Admin{}
	admin.Post("/purge", c.PurgeCache)
}

// @Summary      Purge Option Caches
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request  body      PurgeCacheRequest  false  "Cache to purge"
// @Success      200      {object}  map[string][]string
// @Failure      400      {object}  cserr.Error "Unknown cache name"
// @Failure      401      {object}  cserr.Error "Missing or invalid admin key"
// @Security     AdminKeyAuth
// @Router       /api/_/admin/purge [POST]
func (c *Admin) PurgeCache(ctx *fiber.Ctx) error {
	cachectrl.OptOut(ctx)

	var request PurgeCacheRequest
	if len(ctx.Body()) > 0 {
		if err := rekuest.ValidBody(ctx, &request); err != nil {
			return err
		}
	}

	if err := cache.Delete(ctx.UserContext(), request.Name); err != nil {
		if errors.Is(err, cache.ErrUnknownCache) {
			return cserr.ErrInvalidReq.Msg("unknown cache %q, expected one of %v", request.Name, cache.Names())
		}
		return err
	}

	purged := cache.Names()
	if request.Name != "" {
		purged = []string{request.Name}
	}
	return ctx.JSON(fiber.Map{
		"purged": purged,
	})
}
