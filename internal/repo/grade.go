package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/ganeshsankaran/curve-surfer/internal/constant"
	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/repo/selector"
)

const (
	avgGPAExpr   = "SUM(gpa * freq) / SUM(freq) AS avg_gpa"
	qtrYrExpr    = "concat(qtr, ' ', yr) AS qtr_yr"
	sumFreqExpr  = "SUM(freq) AS freq"
	studentsExpr = "SUM(freq) AS students"
)

// Grade runs the aggregation queries over the grades table.
type Grade struct {
	db  *bun.DB
	sel selector.S[model.Grade]
}

func NewGrade(db *bun.DB) *Grade {
	return &Grade{db: db, sel: selector.New[model.Grade](db)}
}

func (r *Grade) newSelect() *bun.SelectQuery {
	return r.db.NewSelect().Model((*model.Grade)(nil))
}

// newGradedSelect selects rows that carry a grade-point value, narrowed by f.
func (r *Grade) newGradedSelect(f model.Filter) *bun.SelectQuery {
	q := r.newSelect().Where("grade NOT IN (?)", bun.In(constant.PassFailGrades))
	return f.Apply(q)
}

func (r *Grade) departmentsQuery() *bun.SelectQuery {
	return r.newSelect().
		Distinct().
		Column("dept").
		Order("dept")
}

func (r *Grade) ListDepartments(ctx context.Context) ([]string, error) {
	depts := make([]string, 0)
	if err := r.departmentsQuery().Scan(ctx, &depts); err != nil {
		return nil, errors.Wrap(err, "list departments")
	}
	return depts, nil
}

func (r *Grade) distinctColumnQuery(column, dept string) *bun.SelectQuery {
	return r.newSelect().
		Distinct().
		Column(column).
		Where("dept = ?", dept).
		Order(column)
}

// ListCourseNumbers returns the course numbers of dept in plain string order.
func (r *Grade) ListCourseNumbers(ctx context.Context, dept string) ([]string, error) {
	cnums := make([]string, 0)
	if err := r.distinctColumnQuery("cnum", dept).Scan(ctx, &cnums); err != nil {
		return nil, errors.Wrap(err, "list course numbers")
	}
	return cnums, nil
}

func (r *Grade) ListInstructors(ctx context.Context, dept string) ([]string, error) {
	instrs := make([]string, 0)
	if err := r.distinctColumnQuery("instr", dept).Scan(ctx, &instrs); err != nil {
		return nil, errors.Wrap(err, "list instructors")
	}
	return instrs, nil
}

func (r *Grade) quartersQuery(dept string) *bun.SelectQuery {
	return r.newSelect().
		ColumnExpr(qtrYrExpr).
		Where("dept = ?", dept).
		Group("qtr", "yr").
		OrderExpr("yr").
		OrderExpr(constant.SeasonOrderExpr)
}

// ListQuarters returns "Quarter Year" labels of dept in calendar order.
func (r *Grade) ListQuarters(ctx context.Context, dept string) ([]string, error) {
	qtrs := make([]string, 0)
	if err := r.quartersQuery(dept).Scan(ctx, &qtrs); err != nil {
		return nil, errors.Wrap(err, "list quarters")
	}
	return qtrs, nil
}

func (r *Grade) letterGradeDistributionQuery(f model.Filter) *bun.SelectQuery {
	return r.newGradedSelect(f).
		Column("grade", "gpa").
		ColumnExpr(sumFreqExpr).
		Group("grade", "gpa").
		Order("gpa DESC", "grade DESC")
}

// GetLetterGradeDistribution returns the summed frequency of each letter grade, best grade first.
func (r *Grade) GetLetterGradeDistribution(ctx context.Context, f model.Filter) ([]*model.LetterGradeFrequency, error) {
	results := make([]*model.LetterGradeFrequency, 0)
	if err := r.letterGradeDistributionQuery(f).Scan(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "get letter grade distribution")
	}
	return results, nil
}

func (r *Grade) gpaDistributionQuery(f model.Filter) *bun.SelectQuery {
	return r.newGradedSelect(f).
		Column("gpa").
		ColumnExpr(sumFreqExpr).
		Group("gpa")
}

// GetGPADistribution returns the summed frequency of each grade-point value, in no particular order.
func (r *Grade) GetGPADistribution(ctx context.Context, f model.Filter) ([]*model.GPAFrequency, error) {
	results := make([]*model.GPAFrequency, 0)
	if err := r.gpaDistributionQuery(f).Scan(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "get gpa distribution")
	}
	return results, nil
}

func (r *Grade) averageGPAQuery(f model.Filter, column string) *bun.SelectQuery {
	return r.newGradedSelect(f).
		Column(column).
		ColumnExpr(avgGPAExpr).
		ColumnExpr(studentsExpr).
		Group(column).
		Having("SUM(freq) > 0").
		OrderExpr("avg_gpa DESC").
		Order(column)
}

// GetAverageGPAPerCourse returns the average GPA of every course, highest first.
func (r *Grade) GetAverageGPAPerCourse(ctx context.Context, f model.Filter) ([]*model.CourseAverage, error) {
	results := make([]*model.CourseAverage, 0)
	if err := r.averageGPAQuery(f, "cnum").Scan(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "get average gpa per course")
	}
	return results, nil
}

// GetAverageGPAPerInstructor returns the average GPA of every instructor, highest first.
func (r *Grade) GetAverageGPAPerInstructor(ctx context.Context, f model.Filter) ([]*model.InstructorAverage, error) {
	results := make([]*model.InstructorAverage, 0)
	if err := r.averageGPAQuery(f, "instr").Scan(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "get average gpa per instructor")
	}
	return results, nil
}

func (r *Grade) averageGPAPerQuarterQuery(f model.Filter) *bun.SelectQuery {
	return r.newGradedSelect(f).
		ColumnExpr(qtrYrExpr).
		ColumnExpr(avgGPAExpr).
		Group("qtr", "yr").
		Having("SUM(freq) > 0").
		OrderExpr("yr").
		OrderExpr(constant.SeasonOrderExpr)
}

// GetAverageGPAPerQuarter returns the average GPA of every quarter in calendar order.
func (r *Grade) GetAverageGPAPerQuarter(ctx context.Context, f model.Filter) ([]*model.QuarterAverage, error) {
	results := make([]*model.QuarterAverage, 0)
	if err := r.averageGPAPerQuarterQuery(f).Scan(ctx, &results); err != nil {
		return nil, errors.Wrap(err, "get average gpa per quarter")
	}
	return results, nil
}

// ListRecords returns the raw grade rows matching f, pass/fail grades included.
func (r *Grade) ListRecords(ctx context.Context, f model.Filter) ([]*model.Grade, error) {
	records, err := r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return f.Apply(q).
			Order("dept", "cnum", "instr", "yr").
			OrderExpr(constant.SeasonOrderExpr).
			Order("gpa DESC").
			Limit(constant.MaxRecords)
	})
	if err != nil {
		return nil, errors.Wrap(err, "list records")
	}
	return records, nil
}
