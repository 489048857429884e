package report

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/ganeshsankaran/curve-surfer/cmd/app/cli"
	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/render"
	"github.com/ganeshsankaran/curve-surfer/internal/service"
	"github.com/ganeshsankaran/curve-surfer/internal/util/rekuest"
)

type CommandDeps struct {
	fx.In

	ReportService *service.Report
	Config        *appconfig.Config
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "print the grade report of a filter as tables",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dept", Usage: "department, defaults to the configured department"},
			&cli.StringFlag{Name: "cnum", Usage: "course number, e.g. 190DD"},
			&cli.StringFlag{Name: "instr", Usage: "instructor"},
			&cli.StringFlag{Name: "qtr", Usage: `quarter, either a season or "Season Year"`},
			&cli.PathFlag{Name: "chart", Usage: "also write the report charts as an HTML page to `FILE`"},
		},
		Action: func(c *cli.Context) error {
			deps, stop, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return err
			}
			defer stop()

			return run(c, deps)
		},
	}
}

func run(c *cli.Context, deps CommandDeps) error {
	f, err := rekuest.PrepareFilter(model.Filter{
		Dept:  c.String("dept"),
		CNum:  c.String("cnum"),
		Instr: c.String("instr"),
		Qtr:   c.String("qtr"),
	}, deps.Config.DefaultDepartment)
	if err != nil {
		return err
	}

	report, err := deps.ReportService.GetReport(c.Context, f)
	if err != nil {
		return err
	}

	if err := render.Tables(c.App.Writer, report); err != nil {
		return err
	}

	path := c.Path("chart")
	if path == "" {
		return nil
	}

	if err := writeCharts(path, report); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("report charts written")
	return nil
}

// writeCharts renders the chart page of report into a new file at path.
func writeCharts(path string, report *model.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render.Charts(file, report); err != nil {
		_ = file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close chart file")
}
