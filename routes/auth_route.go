package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joy095/cardoctor/controllers/auth_controller"
	middleware "github.com/joy095/cardoctor/middlewares"
)

func RegisterAuthRoutes(router *gin.Engine) {
	authController := auth_controller.NewAuthController()

	router.POST("/jwt", middleware.NewRateLimiter("20-1m", "issueToken"), authController.IssueToken)
	router.POST("/logout", authController.Logout)
}
