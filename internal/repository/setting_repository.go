package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lostxrotimi/service-studio/internal/domain/hero"
)

// HeroImagesKey is the settings key holding the hero slideshow slots.
const HeroImagesKey = "hero_images"

// SettingModel is a key/value row in the process-local settings table.
type SettingModel struct {
	Key       string    `gorm:"column:setting_key;primaryKey;size:100"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (SettingModel) TableName() string { return "settings" }

// GormHeroRepository stores the hero slots as a JSON list under HeroImagesKey.
type GormHeroRepository struct {
	db *gorm.DB
}

// NewGormHeroRepository creates a new GormHeroRepository.
func NewGormHeroRepository(db *gorm.DB) *GormHeroRepository {
	return &GormHeroRepository{db: db}
}

// Load returns the stored slots, or an empty list when nothing is stored yet.
func (r *GormHeroRepository) Load(ctx context.Context) ([]string, error) {
	var model SettingModel
	if err := r.db.WithContext(ctx).Where("setting_key = ?", HeroImagesKey).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load hero images: %w", err)
	}

	var slots []string
	if err := json.Unmarshal([]byte(model.Value), &slots); err != nil {
		return nil, fmt.Errorf("%w: %v", hero.ErrUndecodable, err)
	}
	return slots, nil
}

// Save upserts the full slot list.
func (r *GormHeroRepository) Save(ctx context.Context, slots []string) error {
	if slots == nil {
		slots = []string{}
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to encode hero images: %w", err)
	}

	model := SettingModel{Key: HeroImagesKey, Value: string(raw), UpdatedAt: time.Now().UTC()}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to save hero images: %w", err)
	}
	return nil
}
