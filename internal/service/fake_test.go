package service

import (
	"context"
	"time"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
)

type fakeGradeRepo struct {
	departments   []string
	courseNumbers []string
	instructors   []string
	quarters      []string
	letters       []*model.LetterGradeFrequency
	gpas          []*model.GPAFrequency
	courses       []*model.CourseAverage
	instrs        []*model.InstructorAverage
	qtrs          []*model.QuarterAverage
	records       []*model.Grade

	err   error
	calls map[string]int
}

func (r *fakeGradeRepo) called(name string) {
	if r.calls == nil {
		r.calls = make(map[string]int)
	}
	r.calls[name]++
}

func (r *fakeGradeRepo) ListDepartments(context.Context) ([]string, error) {
	r.called("ListDepartments")
	return r.departments, r.err
}

func (r *fakeGradeRepo) ListCourseNumbers(context.Context, string) ([]string, error) {
	r.called("ListCourseNumbers")
	return r.courseNumbers, r.err
}

func (r *fakeGradeRepo) ListInstructors(context.Context, string) ([]string, error) {
	r.called("ListInstructors")
	return r.instructors, r.err
}

func (r *fakeGradeRepo) ListQuarters(context.Context, string) ([]string, error) {
	r.called("ListQuarters")
	return r.quarters, r.err
}

func (r *fakeGradeRepo) GetLetterGradeDistribution(context.Context, model.Filter) ([]*model.LetterGradeFrequency, error) {
	r.called("GetLetterGradeDistribution")
	return r.letters, r.err
}

func (r *fakeGradeRepo) GetGPADistribution(context.Context, model.Filter) ([]*model.GPAFrequency, error) {
	r.called("GetGPADistribution")
	return r.gpas, r.err
}

func (r *fakeGradeRepo) GetAverageGPAPerCourse(context.Context, model.Filter) ([]*model.CourseAverage, error) {
	r.called("GetAverageGPAPerCourse")
	return r.courses, r.err
}

func (r *fakeGradeRepo) GetAverageGPAPerInstructor(context.Context, model.Filter) ([]*model.InstructorAverage, error) {
	r.called("GetAverageGPAPerInstructor")
	return r.instrs, r.err
}

func (r *fakeGradeRepo) GetAverageGPAPerQuarter(context.Context, model.Filter) ([]*model.QuarterAverage, error) {
	r.called("GetAverageGPAPerQuarter")
	return r.qtrs, r.err
}

func (r *fakeGradeRepo) ListRecords(context.Context, model.Filter) ([]*model.Grade, error) {
	r.called("ListRecords")
	return r.records, r.err
}

// mapCache stands in for the redis backed option caches.
type mapCache map[string][]string

func (c mapCache) MutexGetSet(_ context.Context, key string, dest *[]string, valueFunc func() ([]string, error), _ time.Duration) (bool, error) {
	if v, ok := c[key]; ok {
		*dest = v
		return false, nil
	}
	v, err := valueFunc()
	if err != nil {
		return false, err
	}
	c[key] = v
	*dest = v
	return true, nil
}
