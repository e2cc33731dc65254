package middleware

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pixell-river/hr-directory/pkg/config"
)

// CORS returns the cross-origin policy for cfg. Development reflects any
// origin with credentials; elsewhere only ALLOWED_ORIGINS are accepted.
func CORS(cfg *config.Config) (gin.HandlerFunc, error) {
	corsConfig := cors.Config{
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if cfg.IsDevelopment() {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	} else {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
		corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
		if len(cfg.AllowedOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.AllowedOrigins
		} else {
			corsConfig.AllowOriginFunc = func(string) bool { return false }
		}
	}

	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cors settings: %w", err)
	}
	return cors.New(corsConfig), nil
}
