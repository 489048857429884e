package rekuest

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cserr"
)

// PrepareFilter normalizes f, splits a combined quarter, falls back to defaultDept for
// an empty department and validates the result.
func PrepareFilter(f model.Filter, defaultDept string) (model.Filter, error) {
	f = f.Normalize().SplitQuarterAndYear()
	if f.Dept == "" {
		f.Dept = defaultDept
	}

	if err := ValidStruct(&f); err != nil {
		return model.Filter{}, err
	}

	return f, nil
}

// ValidFilter reads the filter from the query string of ctx and prepares it.
func ValidFilter(ctx *fiber.Ctx, defaultDept string) (model.Filter, error) {
	var f model.Filter
	if err := ctx.QueryParser(&f); err != nil {
		return model.Filter{}, cserr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return PrepareFilter(f, defaultDept)
}

type departmentQuery struct {
	Dept string `query:"dept" validate:"alphanumspace,max=16"`
}

// ValidDepartment reads the optional dept query parameter, normalized like a filter and
// defaulting to defaultDept.
func ValidDepartment(ctx *fiber.Ctx, defaultDept string) (string, error) {
	q := departmentQuery{Dept: model.Filter{Dept: ctx.Query("dept")}.Normalize().Dept}
	if q.Dept == "" {
		q.Dept = defaultDept
	}
	if err := ValidStruct(&q); err != nil {
		return "", err
	}
	return q.Dept, nil
}
