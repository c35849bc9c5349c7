package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/models/auth_models"
)

type AuthController struct{}

// NewAuthController creates and returns a new instance of AuthController.
func NewAuthController() *AuthController {
	return &AuthController{}
}

// IssueToken signs the posted identity payload and delivers it as an
// HTTP-only cookie.
func (ac *AuthController) IssueToken(c *gin.Context) {
	logger.InfoLogger.Info("IssueToken controller called")

	var identity map[string]any
	if err := c.ShouldBindJSON(&identity); err != nil {
		logger.ErrorLogger.Errorf("Failed to bind identity payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identity payload"})
		return
	}

	tokenString, err := auth_models.GenerateToken(identity)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to issue token: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identity payload must include an email"})
		return
	}

	auth_models.SetJWTCookie(c, tokenString)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout clears the token cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	logger.InfoLogger.Info("Logout controller called")

	auth_models.RemoveJWTCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
