package server

import (
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/server/httpserver"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
