package v1

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cachectrl"
	"github.com/ganeshsankaran/curve-surfer/internal/util/rekuest"
)

func (c *Grade) listByDepartment(ctx *fiber.Ctx, list func(ctx context.Context, dept string) ([]string, error)) error {
	dept, err := rekuest.ValidDepartment(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	values, err := list(ctx.UserContext(), dept)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, c.Config.OptionsCacheTTL)
	return ctx.JSON(values)
}

// jsonOrNoContent answers 204 for a breakdown that was skipped or came back empty.
func jsonOrNoContent[T any](ctx *fiber.Ctx, v *T) error {
	if v == nil {
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	return ctx.JSON(v)
}
