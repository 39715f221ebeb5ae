package handlers

import (
	"testing"

	"github.com/camp-buscape/registration-api/internal/auth"
	"github.com/camp-buscape/registration-api/internal/config"
	"github.com/camp-buscape/registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.APIKey{},
		&models.Season{},
		&models.Period{},
		&models.Registration{},
		&models.ReviewEvent{},
	)
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		DefaultSeason: "Verão 2026",
		PaymentAmount: 350.00,
	}
}

// loginAs creates a user with the given role and returns the auth input
// carrying their session cookie.
func loginAs(t *testing.T, db *gorm.DB, authHandler *auth.AuthHandler, discordID, role string) (models.User, auth.AuthInput) {
	t.Helper()
	user := models.User{DiscordID: discordID, Username: "user-" + discordID, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token, err := authHandler.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return user, auth.AuthInput{Cookie: "auth_token=" + token}
}
