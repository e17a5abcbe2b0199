package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/common/auth"
	"github.com/lostxrotimi/service-studio/internal/common/middleware"
	"github.com/lostxrotimi/service-studio/internal/common/response"
)

// StatusDTO reports whether the record store is ready for admin writes.
type StatusDTO struct {
	SchemaMissing    bool      `json:"schema_missing"`
	SetupInstruction string    `json:"setup_instruction,omitempty"`
	Photos           int       `json:"photos"`
	Bookings         int       `json:"bookings"`
	LoadedAt         time.Time `json:"loaded_at"`
}

// AdminHandler handles admin HTTP requests for bookings and the content cache.
type AdminHandler struct {
	bookings *application.BookingService
	admin    *application.AdminService
	content  *application.ContentRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings *application.BookingService, admin *application.AdminService, content *application.ContentRepository) *AdminHandler {
	return &AdminHandler{bookings: bookings, admin: admin, content: content}
}

// RegisterRoutes registers admin dashboard routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminRole := middleware.RequireRole(auth.RoleAdmin)

	admin := r.Group("/api/v1/admin")
	admin.Use(authMW, adminRole)
	{
		admin.GET("/status", h.Status)
		admin.GET("/bookings", h.ListBookings)
		admin.GET("/stats/bookings", h.BookingStats)
		admin.POST("/reload", h.Reload)
	}
}

// Status handles GET /api/v1/admin/status.
func (h *AdminHandler) Status(c *gin.Context) {
	status := StatusDTO{
		SchemaMissing: h.content.SchemaMissing(),
		Photos:        len(h.content.Photos()),
		Bookings:      len(h.content.Bookings()),
		LoadedAt:      h.content.LoadedAt(),
	}
	if status.SchemaMissing {
		status.SetupInstruction = application.SetupInstruction
	}

	response.Success(c, status)
}

// ListBookings handles GET /api/v1/admin/bookings.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	response.Success(c, h.bookings.ListBookings())
}

// BookingStats handles GET /api/v1/admin/stats/bookings.
func (h *AdminHandler) BookingStats(c *gin.Context) {
	stats, err := h.bookings.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}

// Reload handles POST /api/v1/admin/reload.
func (h *AdminHandler) Reload(c *gin.Context) {
	h.admin.Reload(c.Request.Context())
	h.Status(c)
}
