package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cachectrl"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
	"github.com/ganeshsankaran/curve-surfer/internal/service"
	"github.com/ganeshsankaran/curve-surfer/internal/util/rekuest"
)

type Grade struct {
	fx.In

	GradeService *service.Grade
	Config       *appconfig.Config
}

func RegisterGrade(v1 *svr.V1, c Grade) {
	v1.Get("/options", c.GetOptions)
	v1.Get("/departments", c.GetDepartments)
	v1.Get("/courses", c.GetCourseNumbers)
	v1.Get("/instructors", c.GetInstructors)
	v1.Get("/quarters", c.GetQuarters)
}

// @Summary      Get Filter Options
// @Description  Lists every selectable department, course number, instructor and quarter of a department.
// @Tags         Options
// @Produce      json
// @Param        dept    query     string  false  "Department, defaults to the configured department"
// @Success      200     {object}  model.Options
// @Failure      400     {object}  cserr.Error "Invalid department"
// @Failure      500     {object}  cserr.Error "An unexpected error occurred"
// @Router       /api/v1/options [GET]
func (c *Grade) GetOptions(ctx *fiber.Ctx) error {
	dept, err := rekuest.ValidDepartment(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	opts, err := c.GradeService.GetOptions(ctx.UserContext(), dept)
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, c.Config.OptionsCacheTTL)
	return ctx.JSON(opts)
}

// @Summary      Get Departments
// @Tags         Options
// @Produce      json
// @Success      200     {array}   string
// @Failure      500     {object}  cserr.Error "An unexpected error occurred"
// @Router       /api/v1/departments [GET]
func (c *Grade) GetDepartments(ctx *fiber.Ctx) error {
	depts, err := c.GradeService.ListDepartments(ctx.UserContext())
	if err != nil {
		return err
	}

	cachectrl.OptIn(ctx, c.Config.OptionsCacheTTL)
	return ctx.JSON(depts)
}

// @Summary      Get Course Numbers
// @Description  Course numbers are ordered by numeric prefix, then suffix.
// @Tags         Options
// @Produce      json
// @Param        dept    query     string  false  "Department, defaults to the configured department"
// @Success      200     {array}   string
// @Failure      400     {object}  cserr.Error "Invalid department"
// @Failure      500     {object}  cserr.Error "An unexpected error occurred"
// @Router       /api/v1/courses [GET]
func (c *Grade) GetCourseNumbers(ctx *fiber.Ctx) error {
	return c.listByDepartment(ctx, c.GradeService.ListCourseNumbers)
}

// @Summary      Get Instructors
// @Tags         Options
// @Produce      json
// @Param        dept    query     string  false  "Department, defaults to the configured department"
// @Success      200     {array}   string
// @Failure      400     {object}  cserr.Error "Invalid department"
// @Failure      500     {object}  cserr.Error "An unexpected error occurred"
// @Router       /api/v1/instructors [GET]
func (c *Grade) GetInstructors(ctx *fiber.Ctx) error {
	return c.listByDepartment(ctx, c.GradeService.ListInstructors)
}

// @Summary      Get Quarters
// @Description  Quarters are formatted as "Quarter Year" and ordered chronologically.
// @Tags         Options
// @Produce      json
// @Param        dept    query     string  false  "Department, defaults to the configured department"
// @Success      200     {array}   string
// @Failure      400     {object}  cserr.Error "Invalid department"
// @Failure      500     {object}  cserr.Error "An unexpected error occurred"
// @Router       /api/v1/quarters [GET]
func (c *Grade) GetQuarters(ctx *fiber.Ctx) error {
	return c.listByDepartment(ctx, c.GradeService.ListQuarters)
}
