package testentry

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/ganeshsankaran/curve-surfer/internal/app"
	"github.com/ganeshsankaran/curve-surfer/internal/app/appcontext"
)

// DSNEnv names the variable that enables tests against a live database.
const DSNEnv = "CURVESURFER_POSTGRES_DSN"

// Populate boots the application graph against the Postgres and Redis configured in the
// environment and fills targets. t is skipped when no database is configured.
func Populate(t *testing.T, targets ...any) {
	t.Helper()
	if os.Getenv(DSNEnv) == "" {
		t.Skipf("%s is not set", DSNEnv)
	}

	opts := app.Options(appcontext.Declare(appcontext.EnvCLI), fx.Populate(targets...))
	opts = append(opts, fx.Invoke(func() {
		log.Logger = log.Logger.Output(zerolog.NewTestWriter(t))
	}))

	a := fx.New(opts...)
	require.NoError(t, a.Start(context.Background()))
	t.Cleanup(func() {
		_ = a.Stop(context.Background())
	})
}
