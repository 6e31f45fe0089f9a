package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zulhafiz/wellness-events/controllers"
	"github.com/zulhafiz/wellness-events/middleware"
	"github.com/zulhafiz/wellness-events/models"
)

// SetupBookingRoutes configures the wellness-event booking routes
func SetupBookingRoutes(app *fiber.App) {
	events := app.Group("/wellness-events", middleware.Protected())

	events.Post("/", controllers.CreateBookingRequest)
	events.Get("/", controllers.GetBookingRequests)
	events.Get("/:id", controllers.GetBookingRequest)

	// Only the assigned vendor may resolve a request; the role gate keeps
	// HR tokens out before the ownership check runs.
	vendorOnly := middleware.RequireRole(string(models.RoleVendor))
	events.Patch("/:id/approve", vendorOnly, controllers.ApproveBookingRequest)
	events.Patch("/:id/reject", vendorOnly, controllers.RejectBookingRequest)
}
