package util

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrMalformedCourseNumber = errors.New("malformed course number")

	courseNumberRegex = regexp.MustCompile(`^([0-9]+)([A-Z]*)$`)
)

// CourseNumber is a parsed course code such as "190DD": Prefix 190 and Suffix "DD".
type CourseNumber struct {
	Prefix int
	Suffix string
}

// ParseCourseNumber splits a course code into its numeric prefix and its optional
// upper-case alphabetic suffix.
func ParseCourseNumber(cnum string) (CourseNumber, error) {
	m := courseNumberRegex.FindStringSubmatch(cnum)
	if m == nil {
		return CourseNumber{}, errors.Wrapf(ErrMalformedCourseNumber, "%q", cnum)
	}

	prefix, err := strconv.Atoi(m[1])
	if err != nil {
		return CourseNumber{}, errors.Wrapf(ErrMalformedCourseNumber, "%q: %v", cnum, err)
	}

	return CourseNumber{Prefix: prefix, Suffix: m[2]}, nil
}

func (c CourseNumber) Less(other CourseNumber) bool {
	if c.Prefix != other.Prefix {
		return c.Prefix < other.Prefix
	}
	return c.Suffix < other.Suffix
}

// SortByCourseNumber returns records ordered by the course number key returns for
// them: numeric prefix first, then suffix, so "9" < "10" < "190" < "190A" < "190DD".
// Records sharing a course number keep their relative order. The input is not modified.
func SortByCourseNumber[T any](records []T, key func(T) string) ([]T, error) {
	type keyed struct {
		cnum   CourseNumber
		record T
	}

	ks := make([]keyed, 0, len(records))
	for _, record := range records {
		cnum, err := ParseCourseNumber(key(record))
		if err != nil {
			return nil, err
		}
		ks = append(ks, keyed{cnum: cnum, record: record})
	}

	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].cnum.Less(ks[j].cnum)
	})

	sorted := make([]T, 0, len(ks))
	for _, k := range ks {
		sorted = append(sorted, k.record)
	}
	return sorted, nil
}

// SortCourseNumbers is SortByCourseNumber over plain course codes.
func SortCourseNumbers(cnums []string) ([]string, error) {
	return SortByCourseNumber(cnums, func(cnum string) string { return cnum })
}
