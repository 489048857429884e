package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/ganeshsankaran/curve-surfer/cmd/app/cli/report"
	"github.com/ganeshsankaran/curve-surfer/cmd/app/server"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "curvesurfer",
		Description: "Grade distribution reports over a table of course grade frequencies. Built with Go, fiber, bun and go.uber.org/fx. Uses Redis to cache option lists.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			report.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
