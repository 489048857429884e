package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
	"github.com/ganeshsankaran/curve-surfer/internal/service"
	"github.com/ganeshsankaran/curve-surfer/internal/util/rekuest"
)

type Report struct {
	fx.In

	ReportService *service.Report
	Config        *appconfig.Config
}

func RegisterReport(v1 *svr.V1, c Report) {
	v1.Get("/report", c.GetReport)
	v1.Get("/distribution/letter", c.GetLetterGradeDistribution)
	v1.Get("/distribution/stats", c.GetStats)
	v1.Get("/breakdown/course", c.GetAverageGPAPerCourse)
	v1.Get("/breakdown/instructor", c.GetAverageGPAPerInstructor)
	v1.Get("/breakdown/quarter", c.GetAverageGPAPerQuarter)
	v1.Get("/records", c.ListRecords)
}

// @Summary      Get Grade Report
// @Description  Returns the letter grade distribution with statistics and the average GPA breakdowns of a filter. A breakdown along a dimension that the filter already pins is omitted.
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department, defaults to the configured department"
// @Param        cnum    query     string  false  "Course number, e.g. 190DD"
// @Param        instr   query     string  false  "Instructor"
// @Param        qtr     query     string  false  "Quarter, either a season or \"Season Year\""
// @Success      200     {object}  model.Report
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Failure      500     {object}  cserr.Error "An unexpected error occurred"
// @Router       /api/v1/report [GET]
func (c *Report) GetReport(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	report, err := c.ReportService.GetReport(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return ctx.JSON(report)
}

// @Summary      Get Letter Grade Distribution
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department"
// @Param        cnum    query     string  false  "Course number"
// @Param        instr   query     string  false  "Instructor"
// @Param        qtr     query     string  false  "Quarter"
// @Success      200     {object}  model.LetterGradeDistribution
// @Success      204     "No grades match the filter"
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Router       /api/v1/distribution/letter [GET]
func (c *Report) GetLetterGradeDistribution(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	dist, err := c.ReportService.GetLetterGradeDistribution(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return jsonOrNoContent(ctx, dist)
}

// @Summary      Get GPA Statistics
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department"
// @Param        cnum    query     string  false  "Course number"
// @Param        instr   query     string  false  "Instructor"
// @Param        qtr     query     string  false  "Quarter"
// @Success      200     {object}  model.DescriptiveStats
// @Success      204     "No grades match the filter"
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Router       /api/v1/distribution/stats [GET]
func (c *Report) GetStats(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	stats, err := c.ReportService.GetStats(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return jsonOrNoContent(ctx, stats)
}

// @Summary      Get Average GPA per Course
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department"
// @Param        instr   query     string  false  "Instructor"
// @Param        qtr     query     string  false  "Quarter"
// @Success      200     {object}  model.CourseBreakdown
// @Success      204     "Filter pins a course number or nothing matches"
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Router       /api/v1/breakdown/course [GET]
func (c *Report) GetAverageGPAPerCourse(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	breakdown, err := c.ReportService.GetAverageGPAPerCourse(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return jsonOrNoContent(ctx, breakdown)
}

// @Summary      Get Average GPA per Instructor
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department"
// @Param        cnum    query     string  false  "Course number"
// @Param        qtr     query     string  false  "Quarter"
// @Success      200     {object}  model.InstructorBreakdown
// @Success      204     "Filter pins an instructor or nothing matches"
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Router       /api/v1/breakdown/instructor [GET]
func (c *Report) GetAverageGPAPerInstructor(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	breakdown, err := c.ReportService.GetAverageGPAPerInstructor(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return jsonOrNoContent(ctx, breakdown)
}

// @Summary      Get Average GPA per Quarter
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department"
// @Param        cnum    query     string  false  "Course number"
// @Param        instr   query     string  false  "Instructor"
// @Success      200     {object}  model.Chart
// @Success      204     "Filter pins a quarter or nothing matches"
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Router       /api/v1/breakdown/quarter [GET]
func (c *Report) GetAverageGPAPerQuarter(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	chart, err := c.ReportService.GetAverageGPAPerQuarter(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return jsonOrNoContent(ctx, chart)
}

// @Summary      List Grade Records
// @Description  Raw grade rows of a filter, pass/fail grades included.
// @Tags         Report
// @Produce      json
// @Param        dept    query     string  false  "Department"
// @Param        cnum    query     string  false  "Course number"
// @Param        instr   query     string  false  "Instructor"
// @Param        qtr     query     string  false  "Quarter"
// @Success      200     {array}   model.Grade
// @Failure      400     {object}  cserr.Error "Invalid filter"
// @Router       /api/v1/records [GET]
func (c *Report) ListRecords(ctx *fiber.Ctx) error {
	f, err := rekuest.ValidFilter(ctx, c.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	records, err := c.ReportService.ListRecords(ctx.UserContext(), f)
	if err != nil {
		return err
	}

	return ctx.JSON(records)
}
