package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/common/auth"
	"github.com/lostxrotimi/service-studio/internal/common/middleware"
	"github.com/lostxrotimi/service-studio/internal/common/response"
)

// AdminPhotoHandler handles portfolio uploads, deletions and caption generation.
type AdminPhotoHandler struct {
	service *application.AdminService
}

// NewAdminPhotoHandler creates a new AdminPhotoHandler.
func NewAdminPhotoHandler(service *application.AdminService) *AdminPhotoHandler {
	return &AdminPhotoHandler{service: service}
}

// RegisterRoutes registers admin photo routes.
func (h *AdminPhotoHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	photos := r.Group("/api/v1/admin/photos")
	photos.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(auth.RoleAdmin))
	{
		photos.POST("", h.UploadPhoto)
		photos.POST("/caption", h.GenerateCaption)
		photos.DELETE("/:id", h.DeletePhoto)
	}
}

// UploadPhoto handles POST /api/v1/admin/photos (multipart).
func (h *AdminPhotoHandler) UploadPhoto(c *gin.Context) {
	file, closeFile, err := formFile(c, "file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	defer closeFile()

	result, err := h.service.Upload(c.Request.Context(), application.UploadPhotoRequest{
		File:           file,
		Caption:        c.PostForm("caption"),
		Category:       c.PostForm("category"),
		IsHighlight:    formBool(c.PostForm("is_highlight")),
		IsPackageCover: formBool(c.PostForm("is_package_cover")),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// DeletePhoto handles DELETE /api/v1/admin/photos/:id?confirm=true.
func (h *AdminPhotoHandler) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid photo ID")
		return
	}

	if err := h.service.DeletePhoto(c.Request.Context(), photoID, formBool(c.Query("confirm"))); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": photoID, "deleted": true})
}

// GenerateCaption handles POST /api/v1/admin/photos/caption (multipart).
func (h *AdminPhotoHandler) GenerateCaption(c *gin.Context) {
	file, closeFile, err := formFile(c, "file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	defer closeFile()

	caption, err := h.service.GenerateCaption(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"caption": caption})
}

// formFile opens the multipart file in field. The returned func closes it.
func formFile(c *gin.Context, field string) (*application.UploadFile, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &application.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      f,
	}, func() { _ = f.Close() }, nil
}

// formBool accepts "on" from HTML checkboxes in addition to strconv.ParseBool values.
func formBool(v string) bool {
	if v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
