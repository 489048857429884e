package observability

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook records the duration of every bun query in QueryDuration.
type QueryHook struct{}

var _ bun.QueryHook = (*QueryHook)(nil)

func (QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	status := "ok"
	if event.Err != nil {
		status = "error"
	}
	QueryDuration.
		WithLabelValues(event.Operation(), status).
		Observe(time.Since(event.StartTime).Seconds())
}
