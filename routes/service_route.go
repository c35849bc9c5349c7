package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/controllers/services_controller"
	logger_middleware "github.com/joy095/cardoctor/middlewares/logger"
)

func RegisterServicesRoutes(router *gin.Engine, db *pgxpool.Pool) {
	serviceController := services_controller.NewServiceController(db)

	router.GET("/services", logger_middleware.RequestLogger(), serviceController.GetAllServices)
	router.GET("/services/:id", serviceController.GetServiceByID)
}
