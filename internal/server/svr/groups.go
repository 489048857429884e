package svr

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ganeshsankaran/curve-surfer/internal/app/appconfig"
	"github.com/ganeshsankaran/curve-surfer/internal/pkg/middlewares"
)

type V1 struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Meta, *Admin) {
	v1 := app.Group("/api/v1")
	meta := app.Group("/api/_")
	admin := meta.Group("/admin", middlewares.AdminAuth(conf.AdminKey))

	return &V1{Router: v1}, &Meta{Router: meta}, &Admin{Router: admin}
}
