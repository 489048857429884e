package model

import "gopkg.in/guregu/null.v3"

// DescriptiveStats summarizes the per-student grade-point sample of a filter.
type DescriptiveStats struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Mode   float64 `json:"mode"`
	// Stdev is the sample standard deviation; null when N < 2.
	Stdev null.Float `json:"stdev" swaggertype:"number"`
	// Quantiles holds the three quartile cut points.
	Quantiles []float64 `json:"quantiles"`
}
