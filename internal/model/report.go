package model

// Chart is a series of labels with positionally aligned values.
type Chart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type LetterGradeDistribution struct {
	Chart
	Stats *DescriptiveStats `json:"stats"`
}

type CourseBreakdown struct {
	Chart
	Table []*CourseAverage `json:"table"`
}

type InstructorBreakdown struct {
	Chart
	Table []*InstructorAverage `json:"table"`
}

// Report bundles every breakdown for one filter. Breakdowns along a dimension pinned by
// the filter are omitted.
type Report struct {
	Filter              Filter                   `json:"filter"`
	LetterGradeDist     *LetterGradeDistribution `json:"letterGradeDist"`
	AvgGPAPerCourse     *CourseBreakdown         `json:"avgGpaPerCourse,omitempty"`
	AvgGPAPerInstructor *InstructorBreakdown     `json:"avgGpaPerInstructor,omitempty"`
	AvgGPAPerQuarter    *Chart                   `json:"avgGpaPerQuarter,omitempty"`
}

// Options lists the selectable values of every filter dimension.
type Options struct {
	Departments   []string `json:"departments"`
	CourseNumbers []string `json:"courseNumbers"`
	Instructors   []string `json:"instructors"`
	Quarters      []string `json:"quarters"`
}
