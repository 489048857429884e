package model

import (
	"github.com/uptrace/bun"
)

// Grade is one row of the pre-aggregated grades table: how many students of a course
// offering received a given letter grade.
type Grade struct {
	bun.BaseModel `bun:"table:grades,alias:g"`

	Dept  string  `bun:"dept" json:"dept"`
	CNum  string  `bun:"cnum" json:"cnum"`
	Instr string  `bun:"instr" json:"instr"`
	Qtr   string  `bun:"qtr" json:"qtr"`
	Yr    int     `bun:"yr" json:"yr"`
	Grade string  `bun:"grade" json:"grade"`
	GPA   float64 `bun:"gpa" json:"gpa"`
	Freq  int     `bun:"freq" json:"freq"`
}
