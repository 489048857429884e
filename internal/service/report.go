package service

import (
	"context"
	"strconv"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/observability"
	"github.com/ganeshsankaran/curve-surfer/internal/util"
)

// Report turns aggregation rows into chart and table shapes. Every getter returns nil
// when its breakdown is empty, or is skipped because the filter already pins that
// dimension.
type Report struct {
	GradeRepo GradeRepo
}

func NewReport(gradeRepo GradeRepo) *Report {
	return &Report{
		GradeRepo: gradeRepo,
	}
}

func (s *Report) GetStats(ctx context.Context, f model.Filter) (*model.DescriptiveStats, error) {
	dist, err := s.GradeRepo.GetGPADistribution(ctx, f)
	if err != nil {
		return nil, err
	}
	return util.DescribeSample(util.ExpandFrequencies(dist)), nil
}

func (s *Report) GetLetterGradeDistribution(ctx context.Context, f model.Filter) (*model.LetterGradeDistribution, error) {
	rows, err := s.GradeRepo.GetLetterGradeDistribution(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	stats, err := s.GetStats(ctx, f)
	if err != nil {
		return nil, err
	}

	dist := util.Dictify(rows,
		func(r *model.LetterGradeFrequency) string { return r.Grade },
		func(r *model.LetterGradeFrequency) int { return r.Freq },
	)
	return &model.LetterGradeDistribution{
		Chart: util.ChartFromTuples(dist),
		Stats: stats,
	}, nil
}

func (s *Report) GetAverageGPAPerCourse(ctx context.Context, f model.Filter) (*model.CourseBreakdown, error) {
	if f.CNum != "" {
		return nil, nil
	}

	rows, err := s.GradeRepo.GetAverageGPAPerCourse(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	table, err := util.SortByCourseNumber(rows, func(r *model.CourseAverage) string { return r.CNum })
	if err != nil {
		return nil, err
	}

	avgs := util.Dictify(rows,
		func(r *model.CourseAverage) string { return r.CNum },
		func(r *model.CourseAverage) float64 { return r.AvgGPA },
	)
	return &model.CourseBreakdown{
		Chart: util.ChartFromTuples(avgs),
		Table: table,
	}, nil
}

func (s *Report) GetAverageGPAPerInstructor(ctx context.Context, f model.Filter) (*model.InstructorBreakdown, error) {
	if f.Instr != "" {
		return nil, nil
	}

	rows, err := s.GradeRepo.GetAverageGPAPerInstructor(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	avgs := util.Dictify(rows,
		func(r *model.InstructorAverage) string { return r.Instr },
		func(r *model.InstructorAverage) float64 { return r.AvgGPA },
	)
	return &model.InstructorBreakdown{
		Chart: util.ChartFromTuples(avgs),
		Table: util.SortByInstructor(rows),
	}, nil
}

func (s *Report) GetAverageGPAPerQuarter(ctx context.Context, f model.Filter) (*model.Chart, error) {
	if f.Qtr != "" {
		return nil, nil
	}

	rows, err := s.GradeRepo.GetAverageGPAPerQuarter(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	avgs := util.Dictify(rows,
		func(r *model.QuarterAverage) string { return r.QtrYr },
		func(r *model.QuarterAverage) float64 { return r.AvgGPA },
	)
	chart := util.ChartFromTuples(avgs)
	return &chart, nil
}

// GetReport assembles every breakdown of f, one query after another.
func (s *Report) GetReport(ctx context.Context, f model.Filter) (*model.Report, error) {
	letter, err := s.GetLetterGradeDistribution(ctx, f)
	if err != nil {
		return nil, err
	}
	course, err := s.GetAverageGPAPerCourse(ctx, f)
	if err != nil {
		return nil, err
	}
	instr, err := s.GetAverageGPAPerInstructor(ctx, f)
	if err != nil {
		return nil, err
	}
	qtr, err := s.GetAverageGPAPerQuarter(ctx, f)
	if err != nil {
		return nil, err
	}

	observability.ReportGenerated.WithLabelValues(
		strconv.FormatBool(course != nil),
		strconv.FormatBool(instr != nil),
		strconv.FormatBool(qtr != nil),
	).Inc()

	return &model.Report{
		Filter:              f,
		LetterGradeDist:     letter,
		AvgGPAPerCourse:     course,
		AvgGPAPerInstructor: instr,
		AvgGPAPerQuarter:    qtr,
	}, nil
}

func (s *Report) ListRecords(ctx context.Context, f model.Filter) ([]*model.Grade, error) {
	return s.GradeRepo.ListRecords(ctx, f)
}
