package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joy095/cardoctor/config"
	"github.com/joy095/cardoctor/config/db"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/middlewares/cors"
	"github.com/joy095/cardoctor/routes"
)

func init() {
	logger.InitLoggers()
	config.LoadEnv()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db.Connect(cfg.DatabaseURL)
	defer db.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.CorsMiddleware(cfg.CorsOrigins))

	routes.RegisterAuthRoutes(r)
	routes.RegisterServicesRoutes(r, db.DB)
	routes.RegisterBookingRoutes(r, db.DB)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "car doctor server is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.InfoLogger.Infof("Car doctor server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorLogger.Errorf("Server failed to listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.InfoLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorLogger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.InfoLogger.Info("Server exited gracefully.")
}
