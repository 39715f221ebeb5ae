package handlers

import (
	"net/http"

	"github.com/camp-buscape/registration-api/internal/auth"
	"github.com/camp-buscape/registration-api/internal/config"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Auth         *auth.AuthHandler
	Registration *RegistrationHandler
	Options      *OptionsHandler
	CEP          *CEPHandler
	Review       *ReviewHandler
	Settings     *SettingsHandler
	Users        *UserHandler
	APIKeys      *APIKeyHandler
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config, h Handlers) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(corsMiddleware(cfg.FrontendURL))
	}

	// Initialize Huma API
	config := huma.DefaultConfig("Camp Buscapé Registration API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, config)

	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/discord/login", h.Auth.HandleLogin)
	r.Get("/auth/discord/callback", h.Auth.HandleCallback)

	// Public registration routes
	huma.Get(api, "/options", h.Options.HandleOptions)
	huma.Get(api, "/cep/{cep}", h.CEP.HandleLookup)
	huma.Post(api, "/register", h.Registration.HandleRegister)

	// Protected routes
	huma.Get(api, "/me", h.Auth.HandleMe, secured)

	huma.Get(api, "/registrations", h.Review.HandleList, secured)
	huma.Get(api, "/registrations/{id}", h.Review.HandleGet, secured)
	huma.Post(api, "/registrations/{id}/approve", h.Review.HandleApprove, secured)
	huma.Post(api, "/registrations/{id}/reject", h.Review.HandleReject, secured)
	huma.Delete(api, "/registrations/{id}", h.Review.HandleDelete, secured)

	huma.Get(api, "/seasons", h.Settings.HandleListSeasons, secured)
	huma.Post(api, "/seasons", h.Settings.HandleCreateSeason, secured)
	huma.Put(api, "/seasons/{id}", h.Settings.HandleUpdateSeason, secured)
	huma.Delete(api, "/seasons/{id}", h.Settings.HandleDeleteSeason, secured)

	huma.Get(api, "/periods", h.Settings.HandleListPeriods, secured)
	huma.Post(api, "/periods", h.Settings.HandleCreatePeriod, secured)
	huma.Put(api, "/periods/{id}", h.Settings.HandleUpdatePeriod, secured)
	huma.Delete(api, "/periods/{id}", h.Settings.HandleDeletePeriod, secured)

	huma.Get(api, "/users", h.Users.HandleListUsers, secured)
	huma.Put(api, "/users/{id}/role", h.Users.HandleSetRole, secured)

	huma.Post(api, "/api-keys", h.APIKeys.HandleCreate, secured)
	huma.Get(api, "/api-keys", h.APIKeys.HandleList, secured)
	huma.Delete(api, "/api-keys/{id}", h.APIKeys.HandleDelete, secured)
}

// corsMiddleware allows the registration frontend, served from another
// origin in development, to call the API with credentials.
func corsMiddleware(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-KEY")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
