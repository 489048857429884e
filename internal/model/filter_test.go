package model

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

func TestSplitQuarterAndYear(t *testing.T) {
	type testCase struct {
		name   string
		args   Filter
		expect Filter
	}

	testCases := []testCase{
		{
			name:   "combined",
			args:   Filter{Dept: "CMPSC", Qtr: "Fall 2020"},
			expect: Filter{Dept: "CMPSC", Qtr: "Fall", Yr: "2020"},
		},
		{
			name:   "empty",
			args:   Filter{Dept: "CMPSC", CNum: "8"},
			expect: Filter{Dept: "CMPSC", CNum: "8"},
		},
		{
			name:   "season only",
			args:   Filter{Qtr: "Winter"},
			expect: Filter{Qtr: "Winter"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.args.SplitQuarterAndYear())
		})
	}
}

func TestSplitQuarterAndYearLeavesReceiverUntouched(t *testing.T) {
	f := Filter{Qtr: "Spring 2019"}
	_ = f.SplitQuarterAndYear()
	assert.Equal(t, "Spring 2019", f.Qtr)
	assert.Empty(t, f.Yr)
}

func TestNormalize(t *testing.T) {
	f := Filter{
		Dept:  " CMPSC ",
		CNum:  "190dd",
		Instr: " Conrad P ",
		Qtr:   "fall   2020",
	}

	assert.Equal(t, Filter{
		Dept:  "CMPSC",
		CNum:  "190DD",
		Instr: "Conrad P",
		Qtr:   "Fall 2020",
	}, f.Normalize())
	assert.Equal(t, "Summer", Filter{Qtr: "SUMMER"}.Normalize().Qtr)
}

func TestConjunction(t *testing.T) {
	type testCase struct {
		name     string
		args     Filter
		wantExpr string
		wantArgs []any
	}

	testCases := []testCase{
		{
			name:     "all fields",
			args:     Filter{Dept: "CMPSC", CNum: "8", Instr: "Conrad P", Qtr: "Fall", Yr: "2020"},
			wantExpr: "dept = ? AND cnum = ? AND instr = ? AND qtr = ? AND yr = ?",
			wantArgs: []any{"CMPSC", "8", "Conrad P", "Fall", "2020"},
		},
		{
			name:     "empty fields are omitted",
			args:     Filter{Dept: "CMPSC", Instr: "Conrad P"},
			wantExpr: "dept = ? AND instr = ?",
			wantArgs: []any{"CMPSC", "Conrad P"},
		},
		{
			name:     "empty filter",
			args:     Filter{},
			wantExpr: "",
			wantArgs: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr, args := tc.args.Conjunction()
			assert.Equal(t, tc.wantExpr, expr)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestApplyBindsValues(t *testing.T) {
	// sql.OpenDB does not connect; the db is only used to render queries.
	db := bun.NewDB(sql.OpenDB(pgdriver.NewConnector()), pgdialect.New())

	q := Filter{Dept: "CMPSC", CNum: "8'; DROP TABLE grades; --"}.
		Apply(db.NewSelect().Model((*Grade)(nil)).Column("cnum"))

	assert.Equal(t,
		`SELECT "g"."cnum" FROM "grades" AS "g" WHERE (dept = 'CMPSC' AND cnum = '8''; DROP TABLE grades; --')`,
		q.String(),
	)

	unfiltered := Filter{}.Apply(db.NewSelect().Model((*Grade)(nil)).Column("cnum"))
	assert.Equal(t, `SELECT "g"."cnum" FROM "grades" AS "g"`, unfiltered.String())
}
