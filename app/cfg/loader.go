package cfg

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port           string `long:"port" env:"PORT" default:"8000" description:"HTTP server port"`
	AllowedOrigins string `long:"allowed-origins" env:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173" description:"Comma-separated list of allowed CORS origins"`
	JWTSecret      string `long:"jwt-secret" env:"JWT_SECRET" description:"HS256 secret for bearer token verification (optional; auth disabled when unset)"`
	RateLimit      string `long:"rate-limit" env:"RATE_LIMIT" default:"100-H" description:"Request rate limit in <count>-<period> format (S, M, H, D)"`
	MaxUploadSize  int64  `long:"max-upload-size" env:"MAX_UPLOAD_SIZE" default:"10485760" description:"Maximum upload size in bytes"`

	// Extraction configuration
	OCRLanguage  string `long:"ocr-language" env:"OCR_LANGUAGE" default:"eng" description:"Tesseract language(s) for image OCR, e.g. eng or eng+deu"`
	TaxonomyFile string `long:"taxonomy-file" env:"TAXONOMY_FILE" description:"YAML file overriding the built-in category taxonomy (optional)"`

	// Application metadata
	Environment string `long:"environment" env:"ENVIRONMENT" default:"development" description:"Application environment (development, staging, production)"`
	Timezone    string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug       bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:           raw.Port,
		AllowedOrigins: raw.AllowedOrigins,
		JWTSecret:      raw.JWTSecret,
		RateLimit:      raw.RateLimit,
		MaxUploadSize:  raw.MaxUploadSize,
		OCRLanguage:    raw.OCRLanguage,
		TaxonomyFile:   raw.TaxonomyFile,
		Environment:    raw.Environment,
		Timezone:       raw.Timezone,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	if cfg.MaxUploadSize <= 0 {
		return nil, fmt.Errorf("max upload size must be positive, got %d", cfg.MaxUploadSize)
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// GetOrigins splits the configured origins list into individual origins.
func (c *Cfg) GetOrigins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// IsProduction reports whether the service runs in the production
// environment.
func (c *Cfg) IsProduction() bool {
	return c.Environment == "production"
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
