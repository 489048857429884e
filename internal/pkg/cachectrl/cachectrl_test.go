package cachectrl

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptInAndOptOut(t *testing.T) {
	app := fiber.New()
	app.Get("/in", func(c *fiber.Ctx) error {
		OptIn(c, time.Hour)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/out", func(c *fiber.Ctx) error {
		OptOut(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/in", nil))
	require.NoError(t, err)
	assert.Equal(t, "public, max-age=3600", resp.Header.Get(fiber.HeaderCacheControl))
	_, err = time.Parse(http.TimeFormat, resp.Header.Get(fiber.HeaderExpires))
	assert.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/out", nil))
	require.NoError(t, err)
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, "0", resp.Header.Get(fiber.HeaderExpires))
}
