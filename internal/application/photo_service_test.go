package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	photoDomain "github.com/lostxrotimi/service-studio/internal/domain/photo"
)

func newPhotoFixture(t *testing.T, photos *memPhotoRepo, hero *memHeroRepo) *PhotoService {
	t.Helper()
	content := NewContentRepository(photos, &memBookingRepo{}, zap.NewNop())
	content.Load(context.Background())
	return NewPhotoService(content, NewHeroService(hero, &mockObjectStore{}, zap.NewNop()))
}

func TestPhotoService_Home(t *testing.T) {
	photos := newMemPhotoRepo()
	weddings := seedPhotos(photos, 5, photoDomain.CategoryWedding)
	portraits := seedPhotos(photos, 3, photoDomain.CategoryPortrait)
	svc := newPhotoFixture(t, photos, &memHeroRepo{slots: []string{"", "https://cdn.example.com/portfolio/hero-1.jpg"}})

	home := svc.Home(context.Background())

	assert.Len(t, home.Recent, HomeRecentCount)
	assert.Equal(t, []string{"https://cdn.example.com/portfolio/hero-1.jpg"}, home.HeroImages)
	assert.Equal(t, []string{"All", "Portrait", "Wedding"}, home.Categories)
	assert.Empty(t, home.Highlights)
	assert.False(t, home.SchemaMissing)

	require.Len(t, home.Packages, len(photoDomain.KnownCategories()))
	for _, pkg := range home.Packages {
		switch pkg.Category {
		case "Wedding":
			require.NotNil(t, pkg.Cover)
			assert.Equal(t, weddings[4].ID(), pkg.Cover.ID)
		case "Portrait":
			require.NotNil(t, pkg.Cover)
			assert.Equal(t, portraits[2].ID(), pkg.Cover.ID)
		default:
			assert.Nil(t, pkg.Cover, pkg.Category)
		}
	}
}

func TestPhotoService_Gallery(t *testing.T) {
	photos := newMemPhotoRepo()
	seedPhotos(photos, 2, photoDomain.CategoryWedding)
	seedPhotos(photos, 1, photoDomain.CategoryEvent)
	seedPhotos(photos, 1, photoDomain.CategoryOther)
	svc := newPhotoFixture(t, photos, &memHeroRepo{})

	assert.Len(t, svc.Gallery(""), 4)
	assert.Len(t, svc.Gallery("All"), 4)
	assert.Len(t, svc.Gallery("wedding"), 2)
	assert.Len(t, svc.Gallery("Other"), 1)
	assert.Empty(t, svc.Gallery("Landscape"))
	assert.NotNil(t, svc.Gallery("Foo"))
	assert.Empty(t, svc.Gallery("Foo"), "unknown categories match nothing, not Other")
}

func TestPhotoService_PackageCover(t *testing.T) {
	photos := newMemPhotoRepo()
	seeded := seedPhotos(photos, 2, photoDomain.CategoryEvent)
	svc := newPhotoFixture(t, photos, &memHeroRepo{})

	cover, err := svc.PackageCover("event")
	require.NoError(t, err)
	assert.Equal(t, seeded[1].ID(), cover.ID)

	_, err = svc.PackageCover("Fashion")
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestPhotoService_EmptyStore(t *testing.T) {
	svc := newPhotoFixture(t, newMemPhotoRepo(), &memHeroRepo{})

	assert.Empty(t, svc.Gallery(""))
	assert.Empty(t, svc.Highlights())
	assert.Equal(t, []string{"All"}, svc.Categories())
}
