package logger

import (
	"github.com/gin-gonic/gin"
	app_logger "github.com/joy095/cardoctor/logger"
)

// RequestLogger records the host and path of an incoming request before
// passing control onward.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		app_logger.InfoLogger.Infof("called: %s %s", c.Request.Host, c.Request.URL.Path)
		c.Next()
	}
}
