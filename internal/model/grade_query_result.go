package model

type LetterGradeFrequency struct {
	Grade string  `json:"grade" bun:"grade"`
	Freq  int     `json:"freq" bun:"freq"`
	GPA   float64 `json:"gpa" bun:"gpa"`
}

type GPAFrequency struct {
	GPA  float64 `json:"gpa" bun:"gpa"`
	Freq int     `json:"freq" bun:"freq"`
}

type CourseAverage struct {
	CNum     string  `json:"cnum" bun:"cnum"`
	AvgGPA   float64 `json:"avgGpa" bun:"avg_gpa"`
	Students int     `json:"students" bun:"students"`
}

type InstructorAverage struct {
	Instr    string  `json:"instr" bun:"instr"`
	AvgGPA   float64 `json:"avgGpa" bun:"avg_gpa"`
	Students int     `json:"students" bun:"students"`
}

type QuarterAverage struct {
	QtrYr  string  `json:"qtrYr" bun:"qtr_yr"`
	AvgGPA float64 `json:"avgGpa" bun:"avg_gpa"`
}
