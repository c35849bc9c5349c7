package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joy095/cardoctor/controllers/booking_controller"
	"github.com/joy095/cardoctor/middlewares/auth"
)

func RegisterBookingRoutes(router *gin.Engine, db *pgxpool.Pool) {
	bookingController := booking_controller.NewBookingController(db)

	// Listing is the only owner-scoped route; mutations address records by id
	// alone (see DESIGN.md on ownership enforcement).
	router.GET("/booking", auth.AuthRequired(), bookingController.GetBookings)
	router.POST("/bookings", bookingController.CreateBooking)
	router.PATCH("/booking/:id", bookingController.UpdateBookingStatus)
	router.DELETE("/booking/:id", bookingController.DeleteBooking)
}
