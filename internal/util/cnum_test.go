package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
)

func TestParseCourseNumber(t *testing.T) {
	type testCase struct {
		args   string
		expect CourseNumber
	}

	testCases := []testCase{
		{"8", CourseNumber{8, ""}},
		{"190DD", CourseNumber{190, "DD"}},
		{"007A", CourseNumber{7, "A"}},
	}

	for _, tc := range testCases {
		t.Run(tc.args, func(t *testing.T) {
			got, err := ParseCourseNumber(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestParseCourseNumberMalformed(t *testing.T) {
	for _, cnum := range []string{"", "DD190", "190dd", "19 0", "190-A"} {
		t.Run(cnum, func(t *testing.T) {
			_, err := ParseCourseNumber(cnum)
			assert.ErrorIs(t, err, ErrMalformedCourseNumber)
		})
	}
}

func TestSortCourseNumbers(t *testing.T) {
	sorted, err := SortCourseNumbers([]string{"9", "190DD", "10", "190A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "10", "190A", "190DD"}, sorted)

	sorted, err = SortCourseNumbers([]string{"190DD", "190", "8", "130A", "130"})
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "130", "130A", "190", "190DD"}, sorted)
}

func TestSortByCourseNumberKeepsDuplicates(t *testing.T) {
	rows := []*model.CourseAverage{
		{CNum: "24", AvgGPA: 3.1},
		{CNum: "8", AvgGPA: 3.9},
		{CNum: "24", AvgGPA: 2.7},
	}

	sorted, err := SortByCourseNumber(rows, func(r *model.CourseAverage) string { return r.CNum })
	require.NoError(t, err)

	require.Len(t, sorted, 3)
	assert.Equal(t, "8", sorted[0].CNum)
	assert.Equal(t, 3.1, sorted[1].AvgGPA, "duplicates keep their input order")
	assert.Equal(t, 2.7, sorted[2].AvgGPA)
	assert.Equal(t, "24", rows[0].CNum, "input must not be reordered")
}

func TestSortByCourseNumberFailsOnMalformedKey(t *testing.T) {
	_, err := SortCourseNumbers([]string{"8", "x1"})
	assert.ErrorIs(t, err, ErrMalformedCourseNumber)
}
