package meta

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/server/httpserver"
	"github.com/ganeshsankaran/curve-surfer/internal/server/svr"
)

func newAdminApp(key string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: httpserver.ErrorHandler})
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{AdminKey: key}}
	_, _, admin := svr.CreateEndpointGroups(app, conf)
	RegisterAdmin(admin)
	return app
}

func purge(t *testing.T, app *fiber.App, auth, body string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/_/admin/purge", strings.NewReader(body))
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPurgeCacheAuth(t *testing.T) {
	app := newAdminApp("s3cret")

	testCases := []struct {
		name string
		auth string
		want int
	}{
		{name: "missing header", auth: "", want: fiber.StatusUnauthorized},
		{name: "wrong key", auth: "Bearer nope", want: fiber.StatusUnauthorized},
		{name: "wrong scheme", auth: "Basic s3cret", want: fiber.StatusUnauthorized},
		{name: "valid key", auth: "Bearer s3cret", want: fiber.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, purge(t, app, tc.auth, ""))
		})
	}
}

func TestPurgeCacheDisabledWithoutKey(t *testing.T) {
	app := newAdminApp("")
	assert.Equal(t, fiber.StatusUnauthorized, purge(t, app, "Bearer ", ""))
}

func TestPurgeUnknownCache(t *testing.T) {
	app := newAdminApp("s3cret")
	assert.Equal(t, fiber.StatusBadRequest, purge(t, app, "Bearer s3cret", `{"name":"nope"}`))
}
