package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/common/auth"
	"github.com/lostxrotimi/service-studio/internal/common/middleware"
	"github.com/lostxrotimi/service-studio/internal/common/response"
)

// SetHeroSlotRequest assigns an existing image to a hero slot.
type SetHeroSlotRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
}

// HeroHandler handles admin edits of the hero slideshow.
type HeroHandler struct {
	service *application.HeroService
}

// NewHeroHandler creates a new HeroHandler.
func NewHeroHandler(service *application.HeroService) *HeroHandler {
	return &HeroHandler{service: service}
}

// RegisterRoutes registers admin hero routes.
func (h *HeroHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	hero := r.Group("/api/v1/admin/hero")
	hero.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		hero.PUT("/:slot", h.SetSlot)
		hero.POST("/:slot/upload", h.UploadSlot)
		hero.DELETE("/:slot", h.ClearSlot)
	}
}

// SetSlot handles PUT /api/v1/admin/hero/:slot.
func (h *HeroHandler) SetSlot(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}

	var req SetHeroSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slots, err := h.service.SetSlot(c.Request.Context(), slot, req.ImageURL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"slots": slots})
}

// UploadSlot handles POST /api/v1/admin/hero/:slot/upload (multipart).
func (h *HeroHandler) UploadSlot(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}

	file, closeFile, err := formFile(c, "file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	defer closeFile()

	slots, err := h.service.UploadSlot(c.Request.Context(), slot, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"slots": slots})
}

// ClearSlot handles DELETE /api/v1/admin/hero/:slot.
func (h *HeroHandler) ClearSlot(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}

	slots, err := h.service.ClearSlot(c.Request.Context(), slot)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"slots": slots})
}

func slotParam(c *gin.Context) (int, bool) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		response.BadRequest(c, "invalid hero slot")
		return 0, false
	}
	return slot, true
}
