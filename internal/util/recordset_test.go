package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/wrap"
)

func TestDictifyKeepsRowOrder(t *testing.T) {
	rows := []*model.LetterGradeFrequency{
		{Grade: "A+", Freq: 4, GPA: 4.0},
		{Grade: "A", Freq: 20, GPA: 4.0},
		{Grade: "B", Freq: 7, GPA: 3.0},
	}

	got := Dictify(rows,
		func(r *model.LetterGradeFrequency) string { return r.Grade },
		func(r *model.LetterGradeFrequency) int { return r.Freq })

	assert.Equal(t, []wrap.Tuple[string, int]{
		{Key: "A+", Val: 4},
		{Key: "A", Val: 20},
		{Key: "B", Val: 7},
	}, got)
}

func TestListify(t *testing.T) {
	rows := []*model.CourseAverage{{CNum: "8"}, {CNum: "16"}}
	assert.Equal(t, []string{"8", "16"}, Listify(rows, func(r *model.CourseAverage) string { return r.CNum }))
}

func TestChartFromTuples(t *testing.T) {
	chart := ChartFromTuples([]wrap.Tuple[string, int]{{Key: "A", Val: 3}, {Key: "B", Val: 1}})
	assert.Equal(t, model.Chart{Labels: []string{"A", "B"}, Data: []float64{3, 1}}, chart)
}

func TestSortByInstructor(t *testing.T) {
	rows := []*model.InstructorAverage{
		{Instr: "Wang R", AvgGPA: 3.9},
		{Instr: "Conrad P", AvgGPA: 3.1},
		{Instr: "Mirza D", AvgGPA: 3.5},
	}

	sorted := SortByInstructor(rows)
	assert.Equal(t, []string{"Conrad P", "Mirza D", "Wang R"},
		Listify(sorted, func(r *model.InstructorAverage) string { return r.Instr }))
	assert.Equal(t, "Wang R", rows[0].Instr, "input must not be reordered")
}
