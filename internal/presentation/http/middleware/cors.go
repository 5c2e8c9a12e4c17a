package middleware

import (
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers the operator console always needs, whatever the configuration says
var requiredCORSHeaders = []string{"Authorization", "Content-Type", IdempotencyKeyHeader}

// CORSMiddleware creates a CORS middleware with the provided configuration
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: cfg.AllowedMethods,
		AllowHeaders: cfg.AllowedHeaders,
		// spreadsheet downloads read the filename from Content-Disposition
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"Content-Disposition",
			"X-Request-ID",
			"X-Idempotency-Replayed",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = []string{"Accept", "Origin", "X-Request-ID"}
	}
	corsConfig.AllowHeaders = appendMissing(corsConfig.AllowHeaders, requiredCORSHeaders...)

	return cors.New(corsConfig)
}

func appendMissing(headers []string, required ...string) []string {
	for _, r := range required {
		found := false
		for _, h := range headers {
			if h == r {
				found = true
				break
			}
		}
		if !found {
			headers = append(headers, r)
		}
	}
	return headers
}
