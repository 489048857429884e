package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ganeshsankaran/curve-surfer/internal/constant"
)

var (
	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(constant.ServiceName, "db", "query_duration_seconds"),
		Help:    "Duration of database queries in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"operation", "status"})
	ReportGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(constant.ServiceName, "report", "generated_total"),
		Help: "Number of generated reports, labelled by the breakdowns they contain",
	}, []string{"course", "instructor", "quarter"})
	OptionsCacheLookup = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(constant.ServiceName, "options", "cache_lookup_total"),
		Help: "Option list cache lookups by list and result",
	}, []string{"list", "result"})
)
