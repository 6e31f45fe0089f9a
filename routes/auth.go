package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/zulhafiz/wellness-events/controllers"
	"github.com/zulhafiz/wellness-events/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Stricter limit than the rest of the API: login is the brute-force target.
	auth.Use(limiter.New(limiter.Config{
		Max:        5,
		Expiration: 15 * time.Minute,
	}))

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
}
