package main

import (
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/campushire/jobboard/internal/config"
	"github.com/campushire/jobboard/internal/database"
	"github.com/campushire/jobboard/internal/models"
	"github.com/campushire/jobboard/internal/utils"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	adminName := os.Getenv("ADMIN_NAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminName == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	// Check if admin with this email already exists
	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Email)
	} else {
		passwordHash, err := utils.HashPassword(adminPassword)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}

		admin = models.User{
			ID:           uuid.New(),
			Name:         adminName,
			Email:        adminEmail,
			PasswordHash: passwordHash,
			Role:         models.RoleAdmin,
			IsActive:     true,
		}

		if err := database.DB.Create(&admin).Error; err != nil {
			log.Fatal("Failed to create admin user:", err)
		}
		log.Println("Admin user created:", admin.Email)
	}

	// Seed the posting toggles so the settings table is never empty
	for _, key := range []models.SettingKey{models.SettingFacultyCanPost, models.SettingRepCanPost} {
		var setting models.AppSetting
		if err := database.DB.Where("key = ?", key).First(&setting).Error; err == nil {
			log.Println("Setting already exists:", key)
			continue
		}

		setting = models.AppSetting{
			Key:       key,
			Value:     true,
			UpdatedBy: admin.ID,
		}
		if err := database.DB.Create(&setting).Error; err != nil {
			log.Fatal("Failed to create setting:", err)
		}
		log.Println("Setting created:", key)
	}
}
