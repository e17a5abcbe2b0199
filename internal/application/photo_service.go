package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	photoDomain "github.com/lostxrotimi/service-studio/internal/domain/photo"
)

// HomeRecentCount is the number of photos shown in the home-page gallery strip.
const HomeRecentCount = 6

// PhotoDTO is the API response representation of a portfolio photo.
type PhotoDTO struct {
	ID             uuid.UUID `json:"id"`
	ImageURL       string    `json:"image_url"`
	Caption        string    `json:"caption"`
	Category       string    `json:"category"`
	IsHighlight    bool      `json:"is_highlight"`
	IsPackageCover bool      `json:"is_package_cover"`
	CreatedAt      time.Time `json:"created_at"`
}

// PackageDTO pairs a category with its resolved cover image.
type PackageDTO struct {
	Category string    `json:"category"`
	Cover    *PhotoDTO `json:"cover,omitempty"`
}

// HomeDTO is the view model for the home tab.
type HomeDTO struct {
	HeroImages    []string     `json:"hero_images"`
	Recent        []PhotoDTO   `json:"recent"`
	Highlights    []PhotoDTO   `json:"highlights"`
	Categories    []string     `json:"categories"`
	Packages      []PackageDTO `json:"packages"`
	SchemaMissing bool         `json:"schema_missing"`
}

// PhotoService serves the read-only gallery views from the content cache.
type PhotoService struct {
	content *ContentRepository
	hero    *HeroService
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(content *ContentRepository, hero *HeroService) *PhotoService {
	return &PhotoService{content: content, hero: hero}
}

// Home assembles the home tab.
func (s *PhotoService) Home(ctx context.Context) HomeDTO {
	photos := s.content.Photos()

	packages := make([]PackageDTO, 0)
	for _, c := range photoDomain.KnownCategories() {
		pkg := PackageDTO{Category: string(c)}
		if cover := photoDomain.PackageCover(photos, c); cover != nil {
			dto := toPhotoDTO(cover)
			pkg.Cover = &dto
		}
		packages = append(packages, pkg)
	}

	return HomeDTO{
		HeroImages:    s.hero.Active(ctx),
		Recent:        toPhotoDTOs(photoDomain.Recent(photos, HomeRecentCount)),
		Highlights:    toPhotoDTOs(photoDomain.Highlights(photos)),
		Categories:    categoryNames(photoDomain.Categories(photos)),
		Packages:      packages,
		SchemaMissing: s.content.SchemaMissing(),
	}
}

// Gallery returns the photos in category; empty or "All" returns everything and
// an unknown category returns nothing.
func (s *PhotoService) Gallery(category string) []PhotoDTO {
	selected, ok := photoDomain.ParseFilter(category)
	if !ok {
		return []PhotoDTO{}
	}
	return toPhotoDTOs(photoDomain.FilterByCategory(s.content.Photos(), selected))
}

// Highlights returns the highlighted photos.
func (s *PhotoService) Highlights() []PhotoDTO {
	return toPhotoDTOs(photoDomain.Highlights(s.content.Photos()))
}

// Categories returns the gallery filter options.
func (s *PhotoService) Categories() []string {
	return categoryNames(photoDomain.Categories(s.content.Photos()))
}

// PackageCover resolves the cover photo of a category's package.
func (s *PhotoService) PackageCover(category string) (*PhotoDTO, error) {
	c := photoDomain.ParseCategory(category)
	cover := photoDomain.PackageCover(s.content.Photos(), c)
	if cover == nil {
		return nil, domain.NewNotFoundError("Package cover", string(c))
	}
	dto := toPhotoDTO(cover)
	return &dto, nil
}

func categoryNames(cs []photoDomain.Category) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

func toPhotoDTOs(photos []*photoDomain.Photo) []PhotoDTO {
	dtos := make([]PhotoDTO, len(photos))
	for i, p := range photos {
		dtos[i] = toPhotoDTO(p)
	}
	return dtos
}

func toPhotoDTO(p *photoDomain.Photo) PhotoDTO {
	return PhotoDTO{
		ID:             p.ID(),
		ImageURL:       p.ImageURL(),
		Caption:        p.Caption(),
		Category:       string(p.Category()),
		IsHighlight:    p.IsHighlight(),
		IsPackageCover: p.IsPackageCover(),
		CreatedAt:      p.CreatedAt(),
	}
}
