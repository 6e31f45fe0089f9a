package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/zulhafiz/wellness-events/models"
)

// Seed inserts the development users and event-type catalog. It is
// idempotent: existing rows (matched on email / name) are left alone.
func Seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}

	users := []models.User{
		{Name: "John Smith", Email: "john.smith@company.com", Role: models.RoleHR, CompanyName: "TechCorp Inc."},
		{Name: "Emma Davis", Email: "emma.davis@company.com", Role: models.RoleHR, CompanyName: "TechCorp Inc."},
		{Name: "Sarah Johnson", Email: "sarah.johnson@company.com", Role: models.RoleHR, CompanyName: "Wellness Solutions Ltd."},
		{Name: "Mike Chen", Email: "mike.chen@yogastudio.com", Role: models.RoleVendor},
		{Name: "Lisa Garcia", Email: "lisa.garcia@meditation.com", Role: models.RoleVendor},
		{Name: "David Wilson", Email: "david.wilson@nutrition.com", Role: models.RoleVendor},
	}
	for _, user := range users {
		var existing models.User
		if DB.Where("email = ?", user.Email).First(&existing).RowsAffected > 0 {
			continue
		}
		user.Password = string(hash)
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", user.Email, err)
		}
	}

	eventTypes := []string{
		"Yoga Class",
		"Meditation Workshop",
		"Nutrition Seminar",
		"Health Screening",
		"Fitness Bootcamp",
		"Mental Wellness Talk",
	}
	for _, name := range eventTypes {
		var existing models.EventType
		if DB.Where("name = ?", name).First(&existing).RowsAffected > 0 {
			continue
		}
		if err := DB.Create(&models.EventType{Name: name}).Error; err != nil {
			log.Printf("Failed to seed event type %s: %v", name, err)
		}
	}

	log.Println("✅ Seed data applied successfully!")
}
