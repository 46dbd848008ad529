package cfg

type Cfg struct {
	// HTTP server configuration
	Port           string
	AllowedOrigins string
	JWTSecret      string
	RateLimit      string
	MaxUploadSize  int64

	// Extraction configuration
	OCRLanguage  string
	TaxonomyFile string

	// Application metadata
	Environment string
	Timezone    string
	Debug       bool
	Version     string
}
