package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/camp-buscape/registration-api/internal/auth"
	"github.com/camp-buscape/registration-api/internal/cep"
	"github.com/camp-buscape/registration-api/internal/config"
	"github.com/camp-buscape/registration-api/internal/database"
	"github.com/camp-buscape/registration-api/internal/handlers"
	"github.com/camp-buscape/registration-api/internal/notifier"
	"github.com/camp-buscape/registration-api/internal/registration"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Notifications are best effort; the server runs without them.
	var registrationNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		registrationNotifier = discordNotifier
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	cepClient := cep.NewClient(cfg.ViaCEPBaseURL)
	loader := registration.NewLoader(database.NewReferenceStore(db))

	h := handlers.Handlers{
		Auth:         authHandler,
		Registration: handlers.NewRegistrationHandler(db, cfg, registrationNotifier),
		Options:      handlers.NewOptionsHandler(loader),
		CEP:          handlers.NewCEPHandler(cepClient),
		Review:       handlers.NewReviewHandler(db, authHandler),
		Settings:     handlers.NewSettingsHandler(db, authHandler),
		Users:        handlers.NewUserHandler(db, authHandler),
		APIKeys:      handlers.NewAPIKeyHandler(db, authHandler),
	}

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, h)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
