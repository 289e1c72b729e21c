package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Axios-AI-Innovations/cloud/handlers"
	"github.com/Axios-AI-Innovations/cloud/internal/config"
	"github.com/Axios-AI-Innovations/cloud/internal/email"
	"github.com/Axios-AI-Innovations/cloud/internal/logger"
	"github.com/Axios-AI-Innovations/cloud/storage"
)

var version = "dev"

func main() {
	if versionBytes, err := os.ReadFile("VERSION"); err == nil {
		version = strings.TrimSpace(string(versionBytes))
	}
	handlers.Version = version

	_ = godotenv.Load()

	cfg := config.New()

	var store storage.Storage
	if cfg.DatabaseConfigured() {
		if err := storage.RunMigrations("file://db/migrations", cfg.DatabaseURL); err != nil {
			logger.Error("Migrations failed", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}

		pg, err := storage.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to open database", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
		defer pg.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := pg.Ping(ctx); err != nil {
			cancel()
			logger.Error("Database unreachable", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
		cancel()

		store = pg
	} else {
		logger.Warn("DATABASE_URL not set, subscribe endpoint disabled")
	}

	mailer, err := email.NewDispatcher(cfg.EmailJS)
	if err != nil {
		logger.Error("Email dispatcher configuration invalid", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	var sessions handlers.SessionCreator
	if cfg.StripeConfigured() {
		sessions = handlers.NewStripeSessions(cfg.StripeSecretKey)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, checkout endpoint disabled")
	}

	server := handlers.NewServer(cfg, store, mailer, sessions)

	logger.Info("Axios cloud API starting", map[string]interface{}{
		"version": version,
		"port":    cfg.Port,
	})

	if err := http.ListenAndServe(":"+cfg.Port, server.Router); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}
