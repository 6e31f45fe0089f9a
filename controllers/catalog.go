package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zulhafiz/wellness-events/db"
	"github.com/zulhafiz/wellness-events/models"
	"github.com/zulhafiz/wellness-events/redis"
	"github.com/zulhafiz/wellness-events/utils"
)

const (
	eventTypesCacheKey = "catalog:event-types"
	vendorsCacheKey    = "catalog:vendors"
	catalogCacheTTL    = 10 * time.Minute
)

// VendorProfile is the public projection of a vendor user.
type VendorProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func cachedJSON(key string) (string, bool) {
	if redis.Client == nil {
		return "", false
	}
	body, err := redis.Client.Get(redis.Ctx, key).Result()
	if err != nil {
		return "", false
	}
	return body, true
}

func cacheJSON(key string, payload interface{}) string {
	body, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	if redis.Client != nil {
		redis.Client.Set(redis.Ctx, key, body, catalogCacheTTL)
	}
	return string(body)
}

// GetEventTypes handles GET /event-types. Reference data, cached when
// redis is available.
func GetEventTypes(c *fiber.Ctx) error {
	if body, ok := cachedJSON(eventTypesCacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(body)
	}

	var eventTypes []models.EventType
	if err := db.DB.Order("name").Find(&eventTypes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch event types",
			Error:   err.Error(),
		})
	}

	body := cacheJSON(eventTypesCacheKey, fiber.Map{"data": eventTypes})
	if body != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(body)
	}
	return c.JSON(fiber.Map{"data": eventTypes})
}

// GetVendors handles GET /vendors: the vendor directory, names and emails
// only.
func GetVendors(c *fiber.Ctx) error {
	if body, ok := cachedJSON(vendorsCacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(body)
	}

	var vendors []VendorProfile
	if err := db.DB.Model(&models.User{}).
		Where("role = ?", models.RoleVendor).
		Order("name").
		Find(&vendors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch vendors",
			Error:   err.Error(),
		})
	}

	body := cacheJSON(vendorsCacheKey, fiber.Map{"data": vendors})
	if body != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(body)
	}
	return c.JSON(fiber.Map{"data": vendors})
}
