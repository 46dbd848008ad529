package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/listscan/listscan/app/api"
	"github.com/listscan/listscan/app/cfg"
	"github.com/listscan/listscan/app/extractor"
	"github.com/listscan/listscan/app/grocery"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	_ = godotenv.Load()

	// Load configuration from environment variables and command-line flags
	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting listscan server...", "version", appCfg.Version, "environment", appCfg.Environment)

	warnProductionConfig(appCfg)

	// Category taxonomy: built-in unless an override file is configured
	taxonomy := grocery.DefaultTaxonomy()
	if appCfg.TaxonomyFile != "" {
		taxonomy, err = grocery.LoadTaxonomy(appCfg.TaxonomyFile)
		if err != nil {
			log.Fatalf("Failed to load taxonomy: %v", err)
		}
		slog.Info("Loaded taxonomy override", "file", appCfg.TaxonomyFile, "categories", len(taxonomy))
	}

	// Initialize core components
	tagger := grocery.NewTagger(taxonomy)
	parser := grocery.NewParser(tagger)
	ocrClient := extractor.NewTesseractClient(appCfg.OCRLanguage)
	textExtractor := extractor.New(ocrClient)

	// Initialize HTTP server
	slog.Info("Initializing HTTP server...")
	apiHandler := api.NewHandler(textExtractor, parser)
	server, err := api.NewServer(apiHandler)
	if err != nil {
		log.Fatalf("Failed to initialize HTTP server: %v", err)
	}

	// Create HTTP server with timeouts
	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		slog.Info("API endpoints available:")
		slog.Info(fmt.Sprintf("  Parse document: http://localhost:%s/api/documents/parse (POST)", appCfg.Port))
		slog.Info(fmt.Sprintf("  Extract text:   http://localhost:%s/api/documents/extract-text (POST)", appCfg.Port))
		slog.Info(fmt.Sprintf("  Voice parse:    http://localhost:%s/api/documents/voice (POST)", appCfg.Port))
		slog.Info(fmt.Sprintf("  Health check:   http://localhost:%s/health", appCfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("listscan server started successfully!")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("listscan server shutdown complete")
}

// warnProductionConfig flags configuration that is fine in development
// but suspicious in production.
func warnProductionConfig(appCfg *cfg.Cfg) {
	if !appCfg.IsProduction() {
		return
	}

	for _, origin := range appCfg.GetOrigins() {
		if origin == "http://localhost:3000" || origin == "http://localhost:5173" {
			slog.Warn("CORS allows localhost origins in production", "origin", origin)
		}
	}

	if appCfg.JWTSecret == "" {
		slog.Warn("Running in production without JWT_SECRET, document endpoints are unauthenticated")
	}
}
