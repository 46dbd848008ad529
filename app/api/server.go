package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/listscan/listscan/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) (*gin.Engine, error) {
	appCfg := cfg.Get()

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	r.Use(corsMiddleware(appCfg.GetOrigins()))

	rate, err := limiter.NewRateFromFormatted(appCfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit '%s': %w", appCfg.RateLimit, err)
	}
	r.Use(mgin.NewMiddleware(limiter.New(memory.NewStore(), rate)))

	setupRoutes(r, handler, appCfg.JWTSecret)

	return r, nil
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, jwtSecret string) {
	r.GET("/health", handler.GetHealth)

	documents := r.Group("/api/documents")
	if jwtSecret != "" {
		documents.Use(authMiddleware(jwtSecret))
		slog.Info("Document endpoints enabled with bearer token authentication")
	} else {
		slog.Warn("JWT_SECRET not set, document endpoints are unauthenticated")
	}
	{
		documents.POST("/parse", handler.ParseDocument)
		documents.POST("/extract-text", handler.ExtractText)
		documents.POST("/voice", handler.ParseVoice)
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     "listscan",
			"version":     cfg.Get().Version,
			"description": "Grocery list document processing API",
			"endpoints": map[string]string{
				"parse":        "/api/documents/parse (POST, multipart)",
				"extract_text": "/api/documents/extract-text (POST, multipart)",
				"voice":        "/api/documents/voice (POST, JSON)",
				"health":       "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

// corsMiddleware restricts cross-origin access to the configured origins.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && slices.Contains(allowedOrigins, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin, X-Requested-With")
			c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Type")
			c.Header("Access-Control-Max-Age", "600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authMiddleware verifies an HS256 bearer token and requires a subject
// claim, storing it on the request context for handlers.
func authMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must use the Bearer scheme"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		subject, _ := claims["sub"].(string)
		if subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: missing subject claim"})
			c.Abort()
			return
		}

		c.Set("user_id", subject)
		c.Next()
	}
}
