package server

import (
	"os"

	"github.com/urfave/cli/v2"
)

// addressEnv is read by appconfig when the graph starts.
const addressEnv = "CURVESURFER_SERVICE_ADDRESS"

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "serve the grade report HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen on `HOST:PORT` instead of the configured service address",
			},
		},
		Action: func(c *cli.Context) error {
			if addr := c.String("address"); addr != "" {
				if err := os.Setenv(addressEnv, addr); err != nil {
					return err
				}
			}
			Run()
			return nil
		},
	}
}
