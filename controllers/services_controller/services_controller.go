package services_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/models/service_models"
)

type ServiceController struct{ db *pgxpool.Pool }

// NewServiceController creates and returns a new instance of ServiceController.
func NewServiceController(db *pgxpool.Pool) *ServiceController {
	return &ServiceController{db: db}
}

// GetAllServices returns every catalog entry in full.
func (sc *ServiceController) GetAllServices(c *gin.Context) {
	logger.InfoLogger.Info("GetAllServices controller called")

	services, err := service_models.GetAllServices(c.Request.Context(), sc.db)
	if err != nil {
		logger.ErrorLogger.Error("Failed to fetch services: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServiceByID returns the title/price/service_id/img projection of one
// catalog entry. An unknown or malformed id answers 200 with a null body;
// this surface does not distinguish not-found from empty.
func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	logger.InfoLogger.Info("GetServiceByID controller called")

	service, err := service_models.GetServiceByID(c.Request.Context(), sc.db, c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusOK, nil)
			return
		}
		logger.ErrorLogger.Error("Failed to fetch service: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch service"})
		return
	}

	c.JSON(http.StatusOK, service)
}
