package model

import (
	"strings"

	"github.com/uptrace/bun"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter narrows a report down to matching grade rows. An empty field leaves its
// dimension unconstrained.
type Filter struct {
	Dept  string `query:"dept" json:"dept,omitempty" validate:"alphanumspace,max=16"`
	CNum  string `query:"cnum" json:"cnum,omitempty" validate:"alphanumspace,max=16"`
	Instr string `query:"instr" json:"instr,omitempty" validate:"alphanumspace,max=64"`
	Qtr   string `query:"qtr" json:"qtr,omitempty" validate:"omitempty,alphanumspace,season"`
	Yr    string `query:"-" json:"yr,omitempty" validate:"omitempty,numeric,len=4"`
}

// Normalize trims every field, upper-cases the course number and title-cases the
// season of the quarter, so "  fall 2020" becomes "Fall 2020".
func (f Filter) Normalize() Filter {
	f.Dept = strings.TrimSpace(f.Dept)
	f.CNum = strings.ToUpper(strings.TrimSpace(f.CNum))
	f.Instr = strings.TrimSpace(f.Instr)
	f.Yr = strings.TrimSpace(f.Yr)

	qtr := strings.Join(strings.Fields(f.Qtr), " ")
	if season, rest, found := strings.Cut(qtr, " "); found {
		qtr = cases.Title(language.English).String(season) + " " + rest
	} else {
		qtr = cases.Title(language.English).String(qtr)
	}
	f.Qtr = qtr

	return f
}

// SplitQuarterAndYear splits a combined "Quarter Year" value such as "Fall 2020" into
// Qtr "Fall" and Yr "2020". A Qtr that is empty or has no space is left as is.
func (f Filter) SplitQuarterAndYear() Filter {
	if f.Qtr == "" || !strings.Contains(f.Qtr, " ") {
		return f
	}

	f.Qtr, f.Yr, _ = strings.Cut(f.Qtr, " ")
	return f
}

// Conjunction renders the filter as `column = ?` predicates joined by AND, in the
// order dept, cnum, instr, qtr, yr, together with the values to bind. Empty fields
// produce no predicate; an empty filter yields an empty expression.
func (f Filter) Conjunction() (string, []any) {
	fields := []struct {
		column string
		value  string
	}{
		{"dept", f.Dept},
		{"cnum", f.CNum},
		{"instr", f.Instr},
		{"qtr", f.Qtr},
		{"yr", f.Yr},
	}

	var (
		preds []string
		args  []any
	)
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		preds = append(preds, field.column+" = ?")
		args = append(args, field.value)
	}

	return strings.Join(preds, " AND "), args
}

// Apply adds the conjunction of f to q as a WHERE predicate.
func (f Filter) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	expr, args := f.Conjunction()
	if expr == "" {
		return q
	}
	return q.Where(expr, args...)
}
