package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/oviedoj/userbase-be/internal/api/handlers"
	"github.com/oviedoj/userbase-be/internal/auth"
	"github.com/oviedoj/userbase-be/internal/models"
	"github.com/oviedoj/userbase-be/internal/services"
)

// NewRouter creates and configures a new Chi router. Each route declares its
// own auth gates; unprotected routes carry none.
func NewRouter(users services.UserServiceProvider, tokens *auth.TokenService, log zerolog.Logger, development bool) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(Recover(log, development))

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	userHandler := handlers.NewUserHandler(users, tokens, log)

	authenticate := auth.Authenticate(tokens)
	anyRole := auth.RequireRoles(models.RoleAdmin, models.RoleUser)
	adminOnly := auth.RequireRoles(models.RoleAdmin)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/routerHealth", handlers.RouterHealth)

		r.Route("/users", func(r chi.Router) {
			r.Post("/create", userHandler.Create)
			r.Post("/login", userHandler.Login)
			r.With(authenticate, adminOnly).Get("/", userHandler.GetAll)
			r.With(authenticate, anyRole).Get("/profile", userHandler.Profile)

			r.Get("/{id}", userHandler.Get)
			r.With(authenticate, anyRole).Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})
	})

	return r
}
