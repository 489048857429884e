package service

import (
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/repo"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		func(r *repo.Grade) GradeRepo { return r },
		NewGrade,
		NewHealth,
		NewReport,
	))
}
