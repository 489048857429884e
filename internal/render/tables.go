package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
)

const msgNoGrades = "No grades match the filter."

func newTable(title string, header table.Row) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	// go-pretty wraps a title wider than its columns; two borders and two pads surround it
	tbl.Style().Size.WidthMin = text.RuneWidthWithoutEscSequences(title) + 4
	tbl.SetTitle(title)
	tbl.AppendHeader(header)
	return tbl
}

func gpa(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Tables writes every breakdown of report as a text table, skipping the omitted ones.
func Tables(w io.Writer, report *model.Report) error {
	parts := []string{describeFilter(report.Filter)}

	if report.LetterGradeDist == nil {
		parts = append(parts, msgNoGrades)
	} else {
		parts = append(parts, letterGradeTable(report.LetterGradeDist).Render())
		if report.LetterGradeDist.Stats != nil {
			parts = append(parts, statsTable(report.LetterGradeDist.Stats).Render())
		}
	}
	if report.AvgGPAPerCourse != nil {
		parts = append(parts, courseTable(report.AvgGPAPerCourse).Render())
	}
	if report.AvgGPAPerInstructor != nil {
		parts = append(parts, instructorTable(report.AvgGPAPerInstructor).Render())
	}
	if report.AvgGPAPerQuarter != nil {
		parts = append(parts, quarterTable(report.AvgGPAPerQuarter).Render())
	}

	_, err := fmt.Fprintln(w, strings.Join(parts, "\n\n"))
	return err
}

func describeFilter(f model.Filter) string {
	pairs := []string{"dept=" + f.Dept}
	for _, kv := range [][2]string{{"cnum", f.CNum}, {"instr", f.Instr}, {"qtr", strings.TrimSpace(f.Qtr + " " + f.Yr)}} {
		if kv[1] != "" {
			pairs = append(pairs, kv[0]+"="+kv[1])
		}
	}
	return "Report for " + strings.Join(pairs, ", ")
}

func letterGradeTable(dist *model.LetterGradeDistribution) table.Writer {
	tbl := newTable("Letter Grade Distribution", table.Row{"Grade", "Students"})
	total := 0.0
	for i, label := range dist.Labels {
		tbl.AppendRow(table.Row{label, fmt.Sprintf("%.0f", dist.Data[i])})
		total += dist.Data[i]
	}
	tbl.AppendFooter(table.Row{"Total", fmt.Sprintf("%.0f", total)})
	tbl.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight}})
	return tbl
}

func statsTable(stats *model.DescriptiveStats) table.Writer {
	tbl := newTable("GPA Statistics", table.Row{"Statistic", "Value"})
	stdev := "n/a"
	if stats.Stdev.Valid {
		stdev = gpa(stats.Stdev.Float64)
	}
	quartiles := make([]string, 0, len(stats.Quantiles))
	for _, q := range stats.Quantiles {
		quartiles = append(quartiles, gpa(q))
	}
	tbl.AppendRows([]table.Row{
		{"Students", stats.N},
		{"Min", gpa(stats.Min)},
		{"Max", gpa(stats.Max)},
		{"Mean", gpa(stats.Mean)},
		{"Median", gpa(stats.Median)},
		{"Mode", gpa(stats.Mode)},
		{"Stdev", stdev},
		{"Quartiles", strings.Join(quartiles, " / ")},
	})
	return tbl
}

func courseTable(b *model.CourseBreakdown) table.Writer {
	tbl := newTable("Average GPA per Course", table.Row{"Course", "Avg GPA", "Students"})
	for _, row := range b.Table {
		tbl.AppendRow(table.Row{row.CNum, gpa(row.AvgGPA), row.Students})
	}
	return tbl
}

func instructorTable(b *model.InstructorBreakdown) table.Writer {
	tbl := newTable("Average GPA per Instructor", table.Row{"Instructor", "Avg GPA", "Students"})
	for _, row := range b.Table {
		tbl.AppendRow(table.Row{row.Instr, gpa(row.AvgGPA), row.Students})
	}
	return tbl
}

func quarterTable(c *model.Chart) table.Writer {
	tbl := newTable("Average GPA per Quarter", table.Row{"Quarter", "Avg GPA"})
	for i, label := range c.Labels {
		tbl.AppendRow(table.Row{label, gpa(c.Data[i])})
	}
	return tbl
}
