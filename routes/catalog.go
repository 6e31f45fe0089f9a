package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zulhafiz/wellness-events/controllers"
)

// SetupCatalogRoutes configures the public reference-data routes
func SetupCatalogRoutes(app *fiber.App) {
	app.Get("/event-types", controllers.GetEventTypes)
	app.Get("/vendors", controllers.GetVendors)
}
