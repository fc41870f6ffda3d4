// @title Recipes Backend API
// @version 1.0
// @description Recipe storage API with token-based authentication and image upload

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "RECIPES_BACK-END/docs" // This is required for swagger
	"RECIPES_BACK-END/internal/auth"
	"RECIPES_BACK-END/internal/config"
	"RECIPES_BACK-END/internal/handlers"
	"RECIPES_BACK-END/internal/routes"
	"RECIPES_BACK-END/internal/store"
	"RECIPES_BACK-END/internal/token"
	"RECIPES_BACK-END/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	dsn := cfg.GetDSN()

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "recipes-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// ทดสอบ ping ตอนบูต
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	if err := store.RunMigrations(context.Background(), dsn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// --- Services ---
	db := store.NewPostgres(pool)
	tokens := token.New(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)
	authService := auth.NewService(db, tokens)
	uploads := upload.NewClient(&cfg.Upload)

	// --- HTTP Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	recipesHandler := handlers.NewRecipesHandler(db, uploads)
	uploadHandler := handlers.NewUploadHandler(uploads)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup all routes
	routes.SetupRoutes(authHandler, recipesHandler, uploadHandler, healthHandler, tokens)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the default mux with CORS
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// รันเซิร์ฟเวอร์แบบ async
	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// รอ SIGINT/SIGTERM เพื่อปิดอย่างสุภาพ
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
