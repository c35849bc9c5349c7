package booking_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/logger"
	"github.com/joy095/cardoctor/models/auth_models"
	"github.com/joy095/cardoctor/models/booking_models"
)

type BookingController struct{ db *pgxpool.Pool }

// NewBookingController creates and returns a new instance of BookingController.
func NewBookingController(db *pgxpool.Pool) *BookingController {
	return &BookingController{db: db}
}

// CreateBooking inserts the posted payload verbatim and passes the store's
// insert acknowledgment through. No field validation happens here.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	logger.InfoLogger.Info("CreateBooking controller called")

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.ErrorLogger.Errorf("Failed to bind booking payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking payload"})
		return
	}

	result, err := booking_models.CreateBooking(c.Request.Context(), bc.db, payload)
	if err != nil {
		logger.ErrorLogger.Error("Failed to create booking: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBookings lists bookings for the owner named in the email query
// parameter. The route runs behind AuthRequired; on top of that, a present
// email parameter must match the verified identity's email claim. An absent
// parameter lists every booking, unfiltered.
func (bc *BookingController) GetBookings(c *gin.Context) {
	logger.InfoLogger.Info("GetBookings controller called")

	user, err := auth_models.GetAuthUser(c)
	if err != nil {
		logger.ErrorLogger.Errorf("No verified user on booking list: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authorized"})
		return
	}

	ownerEmail := c.Query("email")
	if ownerEmail != "" && ownerEmail != user.Email {
		logger.WarnLogger.Warnf("Identity %q queried bookings of %q", user.Email, ownerEmail)
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := booking_models.GetBookings(c.Request.Context(), bc.db, ownerEmail)
	if err != nil {
		logger.ErrorLogger.Error("Failed to fetch bookings: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus sets only the status field of the addressed booking and
// passes the store's matched/modified counts through. A miss answers 0/0.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	logger.InfoLogger.Info("UpdateBookingStatus controller called")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.ErrorLogger.Errorf("Failed to bind status payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status payload"})
		return
	}

	result, err := booking_models.UpdateBookingStatus(c.Request.Context(), bc.db, c.Param("id"), body.Status)
	if err != nil {
		logger.ErrorLogger.Error("Failed to update booking: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteBooking removes the addressed booking and passes the store's deleted
// count through.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	logger.InfoLogger.Info("DeleteBooking controller called")

	result, err := booking_models.DeleteBooking(c.Request.Context(), bc.db, c.Param("id"))
	if err != nil {
		logger.ErrorLogger.Error("Failed to delete booking: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}
