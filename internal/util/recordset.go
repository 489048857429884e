package util

import (
	"github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/ganeshsankaran/curve-surfer/internal/model"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/wrap"
)

// Dictify turns rows into an ordered mapping, keeping the row order.
func Dictify[T any, K comparable, V any](rows []T, key func(T) K, val func(T) V) []wrap.Tuple[K, V] {
	return lo.Map(rows, func(row T, _ int) wrap.Tuple[K, V] {
		return wrap.Tuple[K, V]{Key: key(row), Val: val(row)}
	})
}

// Listify keeps a single column of rows, in order.
func Listify[T any, V any](rows []T, val func(T) V) []V {
	return lo.Map(rows, func(row T, _ int) V {
		return val(row)
	})
}

// ChartFromTuples splits an ordered mapping into positionally aligned labels and data.
func ChartFromTuples[V float64 | int](tuples []wrap.Tuple[string, V]) model.Chart {
	return model.Chart{
		Labels: wrap.Keys(tuples),
		Data: lo.Map(wrap.Vals(tuples), func(v V, _ int) float64 {
			return float64(v)
		}),
	}
}

// SortByInstructor orders instructor rows alphabetically by name.
func SortByInstructor(rows []*model.InstructorAverage) []*model.InstructorAverage {
	sorted := make([]*model.InstructorAverage, 0, len(rows))
	linq.From(rows).
		OrderByT(func(row *model.InstructorAverage) string { return row.Instr }).
		ToSlice(&sorted)
	return sorted
}
