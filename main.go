package main

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/zulhafiz/wellness-events/config"
	"github.com/zulhafiz/wellness-events/cron"
	"github.com/zulhafiz/wellness-events/db"
	"github.com/zulhafiz/wellness-events/redis"
	"github.com/zulhafiz/wellness-events/routes"
	"github.com/zulhafiz/wellness-events/utils"
)

func main() {
	cfg := config.Load()
	db.Init(cfg)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			db.Migrate()
			return
		case "seed":
			db.Migrate()
			db.Seed()
			return
		}
	}

	redis.InitRedis(cfg.RedisAddr)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupCatalogRoutes(app)

	if cfg.SMTPHost != "" {
		cron.StartCronJobs()
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}

// errorHandler is the catch-all responder: framework errors keep their
// status, anything else is logged and returned as a generic 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(utils.ErrorResponse{
			Message: fiberErr.Message,
		})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Internal server error",
	})
}
