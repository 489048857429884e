package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/app"
	"github.com/ganeshsankaran/curve-surfer/internal/app/appcontext"
)

// Start boots the dependency graph without serving HTTP. The caller stops the returned app.
func Start(module fx.Option) (*fx.App, error) {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(context.Background()); err != nil {
		return nil, err
	}
	return a, nil
}

// Deps populates T from the dependency graph.
func Deps[T any]() (T, func(), error) {
	var deps T
	a, err := Start(fx.Populate(&deps))
	if err != nil {
		return deps, nil, err
	}
	return deps, func() { _ = a.Stop(context.Background()) }, nil
}
