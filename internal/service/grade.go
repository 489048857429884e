package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/model/cache"
	pkgcache "github.com/ganeshsankaran/curve-surfer/internal/pkg/cache"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/observability"
	"github.com/ganeshsankaran/curve-surfer/internal/util"
)

// GradeRepo is the read side of the grades table the services compose.
type GradeRepo interface {
	ListDepartments(ctx context.Context) ([]string, error)
	ListCourseNumbers(ctx context.Context, dept string) ([]string, error)
	ListInstructors(ctx context.Context, dept string) ([]string, error)
	ListQuarters(ctx context.Context, dept string) ([]string, error)
	GetLetterGradeDistribution(ctx context.Context, f model.Filter) ([]*model.LetterGradeFrequency, error)
	GetGPADistribution(ctx context.Context, f model.Filter) ([]*model.GPAFrequency, error)
	GetAverageGPAPerCourse(ctx context.Context, f model.Filter) ([]*model.CourseAverage, error)
	GetAverageGPAPerInstructor(ctx context.Context, f model.Filter) ([]*model.InstructorAverage, error)
	GetAverageGPAPerQuarter(ctx context.Context, f model.Filter) ([]*model.QuarterAverage, error)
	ListRecords(ctx context.Context, f model.Filter) ([]*model.Grade, error)
}

type listCache interface {
	MutexGetSet(ctx context.Context, key string, dest *[]string, valueFunc func() ([]string, error), expire time.Duration) (bool, error)
}

// Grade serves the selectable filter values.
type Grade struct {
	GradeRepo GradeRepo

	ttl           time.Duration
	departments   *pkgcache.Singular[[]string]
	courseNumbers listCache
	instructors   listCache
	quarters      listCache
}

func NewGrade(gradeRepo GradeRepo, conf *appconfig.Config, client *redis.Client) *Grade {
	cache.Initialize(client)

	return &Grade{
		GradeRepo:     gradeRepo,
		ttl:           conf.OptionsCacheTTL,
		departments:   cache.Departments,
		courseNumbers: cache.CourseNumbersByDept,
		instructors:   cache.InstructorsByDept,
		quarters:      cache.QuartersByDept,
	}
}

func lookupResult(calculated bool) string {
	if calculated {
		return "miss"
	}
	return "hit"
}

// Cache: (singular) departments, OptionsCacheTTL
func (s *Grade) ListDepartments(ctx context.Context) ([]string, error) {
	var depts []string
	calculated := false
	err := s.departments.MutexGetSet(&depts, func() ([]string, error) {
		calculated = true
		return s.GradeRepo.ListDepartments(ctx)
	}, s.ttl)
	if err != nil {
		return nil, err
	}
	observability.OptionsCacheLookup.WithLabelValues("departments", lookupResult(calculated)).Inc()
	return depts, nil
}

func (s *Grade) cachedList(ctx context.Context, list string, c listCache, dept string, valueFunc func() ([]string, error)) ([]string, error) {
	var values []string
	calculated, err := c.MutexGetSet(ctx, dept, &values, valueFunc, s.ttl)
	if err != nil {
		return nil, err
	}
	observability.OptionsCacheLookup.WithLabelValues(list, lookupResult(calculated)).Inc()
	return values, nil
}

// Cache: courseNumbers#dept:{dept}, OptionsCacheTTL
func (s *Grade) ListCourseNumbers(ctx context.Context, dept string) ([]string, error) {
	return s.cachedList(ctx, "courseNumbers", s.courseNumbers, dept, func() ([]string, error) {
		cnums, err := s.GradeRepo.ListCourseNumbers(ctx, dept)
		if err != nil {
			return nil, err
		}
		return util.SortCourseNumbers(cnums)
	})
}

// Cache: instructors#dept:{dept}, OptionsCacheTTL
func (s *Grade) ListInstructors(ctx context.Context, dept string) ([]string, error) {
	return s.cachedList(ctx, "instructors", s.instructors, dept, func() ([]string, error) {
		return s.GradeRepo.ListInstructors(ctx, dept)
	})
}

// Cache: quarters#dept:{dept}, OptionsCacheTTL
func (s *Grade) ListQuarters(ctx context.Context, dept string) ([]string, error) {
	return s.cachedList(ctx, "quarters", s.quarters, dept, func() ([]string, error) {
		return s.GradeRepo.ListQuarters(ctx, dept)
	})
}

// GetOptions collects every option list of dept.
func (s *Grade) GetOptions(ctx context.Context, dept string) (*model.Options, error) {
	depts, err := s.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	cnums, err := s.ListCourseNumbers(ctx, dept)
	if err != nil {
		return nil, err
	}
	instrs, err := s.ListInstructors(ctx, dept)
	if err != nil {
		return nil, err
	}
	qtrs, err := s.ListQuarters(ctx, dept)
	if err != nil {
		return nil, err
	}

	return &model.Options{
		Departments:   depts,
		CourseNumbers: cnums,
		Instructors:   instrs,
		Quarters:      qtrs,
	}, nil
}
