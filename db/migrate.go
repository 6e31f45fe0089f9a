package db

import (
	"fmt"
	"log"

	"github.com/zulhafiz/wellness-events/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.EventType{},
		&models.BookingRequest{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
