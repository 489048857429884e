package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
)

func fixtureReport() *model.Report {
	return &model.Report{
		Filter: model.Filter{Dept: "CMPSC", Qtr: "Fall", Yr: "2020"},
		LetterGradeDist: &model.LetterGradeDistribution{
			Chart: model.Chart{Labels: []string{"A", "B"}, Data: []float64{3, 1}},
			Stats: &model.DescriptiveStats{
				N: 4, Min: 3, Max: 4, Mean: 3.75, Median: 4, Mode: 4,
				Stdev:     null.FloatFrom(0.5),
				Quantiles: []float64{3.25, 4, 4},
			},
		},
		AvgGPAPerCourse: &model.CourseBreakdown{
			Chart: model.Chart{Labels: []string{"16", "8"}, Data: []float64{3.8, 3.5}},
			Table: []*model.CourseAverage{{CNum: "8", AvgGPA: 3.5, Students: 1}, {CNum: "16", AvgGPA: 3.8, Students: 3}},
		},
	}
}

func TestTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, fixtureReport()))

	out := buf.String()
	assert.Contains(t, out, "Report for dept=CMPSC, qtr=Fall 2020")
	assert.Contains(t, out, "Letter Grade Distribution")
	assert.Contains(t, out, "GPA Statistics")
	assert.Contains(t, out, "3.25 / 4.00 / 4.00")
	assert.Contains(t, out, "Average GPA per Course")
	assert.NotContains(t, out, "Average GPA per Instructor")
	assert.NotContains(t, out, "Average GPA per Quarter")
}

func TestTablesKeepTitlesOnNarrowColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, &model.Report{
		Filter: model.Filter{Dept: "CMPSC", Instr: "Wang Y"},
		LetterGradeDist: &model.LetterGradeDistribution{
			Chart: model.Chart{Labels: []string{"A"}, Data: []float64{1}},
		},
		AvgGPAPerQuarter: &model.Chart{Labels: []string{"W 20"}, Data: []float64{4}},
	}))

	out := buf.String()
	assert.Contains(t, out, "Letter Grade Distribution")
	assert.Contains(t, out, "Average GPA per Quarter")
}

func TestTablesEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tables(&buf, &model.Report{Filter: model.Filter{Dept: "CMPSC", CNum: "8"}}))
	assert.Contains(t, buf.String(), msgNoGrades)
	assert.Contains(t, buf.String(), "cnum=8")
}

func TestCharts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Charts(&buf, fixtureReport()))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Letter Grade Distribution")
	assert.Contains(t, out, "Average GPA per Course")
	assert.NotContains(t, out, "Average GPA per Quarter")
}
