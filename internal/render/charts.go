package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/util"
)

const chartHeight = "420px"

// Charts writes an HTML page with one bar chart per breakdown present in report.
func Charts(w io.Writer, report *model.Report) error {
	page := components.NewPage()
	page.PageTitle = describeFilter(report.Filter)

	if report.LetterGradeDist != nil {
		page.AddCharts(barChart("Letter Grade Distribution", "Students", report.LetterGradeDist.Chart))
	}
	if report.AvgGPAPerCourse != nil {
		page.AddCharts(barChart("Average GPA per Course", "Avg GPA", report.AvgGPAPerCourse.Chart))
	}
	if report.AvgGPAPerInstructor != nil {
		page.AddCharts(barChart("Average GPA per Instructor", "Avg GPA", report.AvgGPAPerInstructor.Chart))
	}
	if report.AvgGPAPerQuarter != nil {
		page.AddCharts(barChart("Average GPA per Quarter", "Avg GPA", *report.AvgGPAPerQuarter))
	}

	return errors.Wrap(page.Render(w), "render charts")
}

func barChart(title, series string, c model.Chart) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(c.Labels)

	bar.AddSeries(series, util.Listify(c.Data, func(v float64) opts.BarData {
		return opts.BarData{Value: v}
	}))

	return bar
}
