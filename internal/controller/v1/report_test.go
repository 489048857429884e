package v1

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/server/httpserver"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
	"github.com/ganeshsankaran/curve-surfer/internal/service"
)

type stubGradeRepo struct {
	empty bool
}

func (r stubGradeRepo) ListDepartments(context.Context) ([]string, error) {
	return []string{"CMPSC"}, nil
}

func (r stubGradeRepo) ListCourseNumbers(context.Context, string) ([]string, error) {
	return []string{"8", "16"}, nil
}

func (r stubGradeRepo) ListInstructors(context.Context, string) ([]string, error) {
	return []string{"Conrad P"}, nil
}

func (r stubGradeRepo) ListQuarters(context.Context, string) ([]string, error) {
	return []string{"Fall 2020"}, nil
}

func (r stubGradeRepo) GetLetterGradeDistribution(context.Context, model.Filter) ([]*model.LetterGradeFrequency, error) {
	if r.empty {
		return nil, nil
	}
	return []*model.LetterGradeFrequency{{Grade: "A", Freq: 3, GPA: 4}, {Grade: "B", Freq: 1, GPA: 3}}, nil
}

func (r stubGradeRepo) GetGPADistribution(context.Context, model.Filter) ([]*model.GPAFrequency, error) {
	if r.empty {
		return nil, nil
	}
	return []*model.GPAFrequency{{GPA: 4, Freq: 3}, {GPA: 3, Freq: 1}}, nil
}

func (r stubGradeRepo) GetAverageGPAPerCourse(context.Context, model.Filter) ([]*model.CourseAverage, error) {
	if r.empty {
		return nil, nil
	}
	return []*model.CourseAverage{{CNum: "16", AvgGPA: 3.8, Students: 3}, {CNum: "8", AvgGPA: 3.5, Students: 1}}, nil
}

func (r stubGradeRepo) GetAverageGPAPerInstructor(context.Context, model.Filter) ([]*model.InstructorAverage, error) {
	if r.empty {
		return nil, nil
	}
	return []*model.InstructorAverage{{Instr: "Conrad P", AvgGPA: 3.75, Students: 4}}, nil
}

func (r stubGradeRepo) GetAverageGPAPerQuarter(context.Context, model.Filter) ([]*model.QuarterAverage, error) {
	if r.empty {
		return nil, nil
	}
	return []*model.QuarterAverage{{QtrYr: "Fall 2020", AvgGPA: 3.75}}, nil
}

func (r stubGradeRepo) ListRecords(context.Context, model.Filter) ([]*model.Grade, error) {
	return []*model.Grade{}, nil
}

func newTestApp(repo service.GradeRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{DefaultDepartment: "CMPSC"}}
	RegisterReport(&svr.V1{Router: app.Group("/api/v1")}, Report{
		ReportService: service.NewReport(repo),
		Config:        conf,
	})
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestGetReport(t *testing.T) {
	app := newTestApp(stubGradeRepo{})

	status, body := get(t, app, "/api/v1/report?cnum=16&qtr=fall%202020")
	require.Equal(t, fiber.StatusOK, status)

	var report model.Report
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, model.Filter{Dept: "CMPSC", CNum: "16", Qtr: "Fall", Yr: "2020"}, report.Filter)
	require.NotNil(t, report.LetterGradeDist)
	assert.Equal(t, []string{"A", "B"}, report.LetterGradeDist.Labels)
	assert.Nil(t, report.AvgGPAPerCourse)
	assert.NotNil(t, report.AvgGPAPerInstructor)
	assert.Nil(t, report.AvgGPAPerQuarter)
	assert.NotContains(t, string(body), "avgGpaPerCourse")
}

func TestInvalidFilterIsRejected(t *testing.T) {
	app := newTestApp(stubGradeRepo{})

	testCases := []struct {
		name   string
		target string
	}{
		{name: "quote in course number", target: "/api/v1/report?cnum=8%27%3B%20DROP%20TABLE%20grades"},
		{name: "unknown season", target: "/api/v1/breakdown/course?qtr=Autumn%202020"},
		{name: "malformed year", target: "/api/v1/distribution/letter?qtr=Fall%2020"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := get(t, app, tc.target)
			assert.Equal(t, fiber.StatusBadRequest, status)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(body, &resp))
			assert.Equal(t, "INVALID_REQUEST", resp["code"])
			assert.NotEmpty(t, resp["violations"])
		})
	}
}

func TestGuardedBreakdownHasNoContent(t *testing.T) {
	app := newTestApp(stubGradeRepo{})

	status, _ := get(t, app, "/api/v1/breakdown/course?cnum=8")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = get(t, app, "/api/v1/breakdown/instructor?instr=Conrad%20P")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body := get(t, app, "/api/v1/breakdown/course")
	require.Equal(t, fiber.StatusOK, status)

	var breakdown model.CourseBreakdown
	require.NoError(t, json.Unmarshal(body, &breakdown))
	assert.Equal(t, []string{"16", "8"}, breakdown.Labels)
	require.Len(t, breakdown.Table, 2)
	assert.Equal(t, "8", breakdown.Table[0].CNum)
}

func TestEmptyResultsHaveNoContent(t *testing.T) {
	app := newTestApp(stubGradeRepo{empty: true})

	for _, target := range []string{
		"/api/v1/distribution/letter",
		"/api/v1/distribution/stats",
		"/api/v1/breakdown/quarter",
	} {
		status, _ := get(t, app, target)
		assert.Equal(t, fiber.StatusNoContent, status, target)
	}
}
