package rekuest

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/cserr"
)

func TestPrepareFilter(t *testing.T) {
	f, err := PrepareFilter(model.Filter{CNum: "190dd", Qtr: "fall 2020"}, "CMPSC")
	require.NoError(t, err)

	assert.Equal(t, model.Filter{
		Dept: "CMPSC",
		CNum: "190DD",
		Qtr:  "Fall",
		Yr:   "2020",
	}, f)
}

func TestPrepareFilterKeepsExplicitDepartment(t *testing.T) {
	f, err := PrepareFilter(model.Filter{Dept: "MATH"}, "CMPSC")
	require.NoError(t, err)
	assert.Equal(t, "MATH", f.Dept)
}

func TestPrepareFilterRejectsInvalidValues(t *testing.T) {
	type testCase struct {
		name      string
		args      model.Filter
		field     string
		violation string
	}

	testCases := []testCase{
		{"quote in instructor", model.Filter{Instr: "O'Neil"}, "instr", "alphanumspace"},
		{"sql in course", model.Filter{CNum: "8;--"}, "cnum", "alphanumspace"},
		{"unknown season", model.Filter{Qtr: "Autumn 2020"}, "qtr", "season"},
		{"non numeric year", model.Filter{Qtr: "Fall twenty"}, "yr", "numeric"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PrepareFilter(tc.args, "CMPSC")
			require.Error(t, err)

			var e *cserr.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, cserr.CodeInvalidRequest, e.ErrorCode)
			require.NotNil(t, e.Extras)

			violations, ok := (*e.Extras)["violations"].([]*ErrorResponse)
			require.True(t, ok)
			require.Len(t, violations, 1)
			assert.Equal(t, tc.field, violations[0].Field)
			assert.Equal(t, tc.violation, violations[0].Violation)
			assert.NotEmpty(t, violations[0].Message)
		})
	}
}

func TestValidDepartment(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		dept, err := ValidDepartment(ctx, "CMPSC")
		if err != nil {
			return err
		}
		return ctx.SendString(dept)
	})

	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{"missing", "", "CMPSC"},
		{"blank", "?dept=%20%20", "CMPSC"},
		{"padded", "?dept=%20MATH%20", "MATH"},
		{"plain", "?dept=PSTAT", "PSTAT"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+tc.query, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(body))
		})
	}
}
