package cors

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// defaultAllowedOrigins is the fixed allow-list for credentialed requests.
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://simple-firebase-23555.web.app",
	"https://simple-firebase-23555.firebaseapp.com",
}

// CorsMiddleware allows credentialed cross-origin requests from the fixed
// allow-list only. A non-empty origins list (CORS_ORIGINS via the app config)
// overrides the built-in one.
func CorsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
