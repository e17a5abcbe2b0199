package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	photoDomain "github.com/lostxrotimi/service-studio/internal/domain/photo"
)

// PhotoModel is the GORM model for the photos table.
type PhotoModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImageURL       string    `gorm:"type:text;not null"`
	Caption        string    `gorm:"type:text"`
	Category       string    `gorm:"type:varchar(40);not null;index"`
	IsHighlight    bool      `gorm:"not null;default:false"`
	IsPackageCover bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName sets the table name.
func (PhotoModel) TableName() string { return "photos" }

// GormPhotoRepository implements PhotoRepository using GORM.
type GormPhotoRepository struct {
	db *gorm.DB
}

// NewGormPhotoRepository creates a new GormPhotoRepository.
func NewGormPhotoRepository(db *gorm.DB) *GormPhotoRepository {
	return &GormPhotoRepository{db: db}
}

// Save inserts a new photo record.
func (r *GormPhotoRepository) Save(ctx context.Context, photo *photoDomain.Photo) error {
	model := toPhotoModel(photo)
	return classify("failed to save photo", r.db.WithContext(ctx).Create(&model).Error)
}

// FindByID returns a single photo by ID.
func (r *GormPhotoRepository) FindByID(ctx context.Context, id uuid.UUID) (*photoDomain.Photo, error) {
	var model PhotoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Photo", id.String())
		}
		return nil, classify("failed to find photo", err)
	}
	return toPhotoDomain(&model), nil
}

// ListRecent returns all photos, newest first.
func (r *GormPhotoRepository) ListRecent(ctx context.Context) ([]*photoDomain.Photo, error) {
	var models []PhotoModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, classify("failed to list photos", err)
	}

	photos := make([]*photoDomain.Photo, len(models))
	for i := range models {
		photos[i] = toPhotoDomain(&models[i])
	}
	return photos, nil
}

// ClearPackageCover unsets is_package_cover for every photo that reads back as
// category. Stored values are folded like ParseCategory: case and surrounding
// space are ignored, and Other covers every value outside the known tags.
func (r *GormPhotoRepository) ClearPackageCover(ctx context.Context, category photoDomain.Category) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&PhotoModel{}).
		Where("is_package_cover = ?", true)
	if category == photoDomain.CategoryOther {
		query = query.Where("LOWER(TRIM(category)) NOT IN ?", knownCategoryKeys())
	} else {
		query = query.Where("LOWER(TRIM(category)) = ?", strings.ToLower(string(category)))
	}

	result := query.Update("is_package_cover", false)
	if result.Error != nil {
		return 0, classify("failed to reset package cover", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a photo record.
func (r *GormPhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PhotoModel{})
	if result.Error != nil {
		return classify("failed to delete photo", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Photo", id.String())
	}
	return nil
}

func knownCategoryKeys() []string {
	known := photoDomain.KnownCategories()
	keys := make([]string, len(known))
	for i, c := range known {
		keys[i] = strings.ToLower(string(c))
	}
	return keys
}

func toPhotoModel(p *photoDomain.Photo) PhotoModel {
	return PhotoModel{
		ID:             p.ID(),
		ImageURL:       p.ImageURL(),
		Caption:        p.Caption(),
		Category:       string(p.Category()),
		IsHighlight:    p.IsHighlight(),
		IsPackageCover: p.IsPackageCover(),
		CreatedAt:      p.CreatedAt(),
	}
}

func toPhotoDomain(m *PhotoModel) *photoDomain.Photo {
	return photoDomain.Reconstruct(
		m.ID,
		m.ImageURL,
		m.Caption,
		photoDomain.ParseCategory(m.Category),
		m.IsHighlight,
		m.IsPackageCover,
		m.CreatedAt,
	)
}
