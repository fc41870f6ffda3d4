package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"RECIPES_BACK-END/internal/handlers"
	"RECIPES_BACK-END/internal/middleware"
	"RECIPES_BACK-END/internal/token"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	recipesHandler *handlers.RecipesHandler,
	uploadHandler *handlers.UploadHandler,
	healthHandler *handlers.HealthHandler,
	tokens *token.Service,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)

	// Recipe routes, guarded per resource owner
	http.HandleFunc("/api/recipes/", middleware.RequireUser(recipesHandler.Recipes, tokens))
	http.HandleFunc("/api/upload", middleware.RequireUser(uploadHandler.Upload, tokens))

	// Swagger documentation
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Welcome to the Recipes API!"))
}
