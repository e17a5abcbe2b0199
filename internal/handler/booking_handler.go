package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/common/response"
	bookingDomain "github.com/lostxrotimi/service-studio/internal/domain/booking"
)

// BookingHandler handles public booking requests.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all public booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.SubmitBooking)
	}
}

// SubmitBooking handles POST /api/v1/bookings. The response carries the
// submission state whether or not the booking was stored.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req application.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub := bookingDomain.NewSubmission()
	result, err := h.service.Submit(c.Request.Context(), sub, req.Form())
	if err != nil {
		response.ErrorWithData(c, err, application.SubmissionResult(sub, nil))
		return
	}

	response.Created(c, application.SubmissionResult(sub, result))
}
