package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/common/response"
)

// PhotoHandler serves the public portfolio views.
type PhotoHandler struct {
	service *application.PhotoService
	hero    *application.HeroService
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(service *application.PhotoService, hero *application.HeroService) *PhotoHandler {
	return &PhotoHandler{service: service, hero: hero}
}

// RegisterRoutes registers all public content routes.
func (h *PhotoHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/api/v1")
	{
		public.GET("/content", h.GetContent)
		public.GET("/photos", h.ListPhotos)
		public.GET("/photos/highlights", h.ListHighlights)
		public.GET("/categories", h.ListCategories)
		public.GET("/packages/:category/cover", h.GetPackageCover)
		public.GET("/hero", h.GetHero)
	}
}

// GetContent handles GET /api/v1/content.
func (h *PhotoHandler) GetContent(c *gin.Context) {
	response.Success(c, h.service.Home(c.Request.Context()))
}

// ListPhotos handles GET /api/v1/photos?category=X.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	response.Success(c, h.service.Gallery(c.Query("category")))
}

// ListHighlights handles GET /api/v1/photos/highlights.
func (h *PhotoHandler) ListHighlights(c *gin.Context) {
	response.Success(c, h.service.Highlights())
}

// ListCategories handles GET /api/v1/categories.
func (h *PhotoHandler) ListCategories(c *gin.Context) {
	response.Success(c, h.service.Categories())
}

// GetPackageCover handles GET /api/v1/packages/:category/cover.
func (h *PhotoHandler) GetPackageCover(c *gin.Context) {
	cover, err := h.service.PackageCover(c.Param("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, cover)
}

// GetHero handles GET /api/v1/hero.
func (h *PhotoHandler) GetHero(c *gin.Context) {
	ctx := c.Request.Context()
	response.Success(c, gin.H{
		"slots":  h.hero.Slots(ctx),
		"active": h.hero.Active(ctx),
	})
}
