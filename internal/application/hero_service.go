package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	"github.com/lostxrotimi/service-studio/internal/domain/hero"
)

// HeroService manages the hero slideshow slots in the local settings store.
type HeroService struct {
	repo    hero.Repository
	objects ObjectStore
	names   *objectNamer
	logger  *zap.Logger

	mu sync.Mutex
}

// NewHeroService creates a new HeroService.
func NewHeroService(repo hero.Repository, objects ObjectStore, logger *zap.Logger) *HeroService {
	return &HeroService{repo: repo, objects: objects, names: newObjectNamer(), logger: logger}
}

// Slots returns all slots, including empty placeholders. An unreadable entry
// is logged and treated as empty.
func (s *HeroService) Slots(ctx context.Context) []string {
	return s.load(ctx).Slots()
}

// Active returns the non-empty slots for display.
func (s *HeroService) Active(ctx context.Context) []string {
	return s.load(ctx).Active()
}

// SetSlot assigns an image reference to slot index and persists the full list.
func (s *HeroService) SetSlot(ctx context.Context, index int, ref string) ([]string, error) {
	if ref == "" {
		return nil, domain.NewValidationError("image_url is required")
	}
	return s.mutate(ctx, func(sl *hero.Slides) error { return sl.Set(index, ref) })
}

// ClearSlot empties slot index and persists the full list.
func (s *HeroService) ClearSlot(ctx context.Context, index int) ([]string, error) {
	return s.mutate(ctx, func(sl *hero.Slides) error { return sl.Clear(index) })
}

// UploadSlot stores file in the object store and assigns its public URL to slot index.
func (s *HeroService) UploadSlot(ctx context.Context, index int, file *UploadFile) ([]string, error) {
	if file == nil || file.Reader == nil {
		return nil, domain.NewValidationError("file is required")
	}
	if index < 0 || index >= hero.MaxSlots {
		return nil, domain.NewValidationError(fmt.Sprintf("hero slot must be between 0 and %d", hero.MaxSlots-1))
	}

	name := "hero-" + s.names.next(file.Filename)
	if err := s.objects.Upload(ctx, name, file.Reader, file.Size, file.ContentType); err != nil {
		return nil, domain.NewStoreWriteError("failed to upload hero image", err)
	}

	slots, err := s.SetSlot(ctx, index, s.objects.PublicURL(name))
	if err != nil {
		if rmErr := s.objects.Remove(ctx, name); rmErr != nil {
			s.logger.Warn("failed to remove orphaned hero image", zap.String("object", name), zap.Error(rmErr))
		}
		return nil, err
	}
	return slots, nil
}

func (s *HeroService) mutate(ctx context.Context, change func(*hero.Slides) error) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, hero.ErrUndecodable):
		s.logger.Warn("replacing undecodable hero images", zap.Error(err))
		slots = nil
	case err != nil:
		return nil, domain.NewStoreReadError("failed to read hero images", err)
	}

	slides := hero.NewSlides(slots)
	if err := change(slides); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, slides.Slots()); err != nil {
		return nil, domain.NewStoreWriteError("failed to save hero images", err)
	}

	s.logger.Info("hero slideshow updated", zap.Strings("slots", slides.Slots()))
	return slides.Slots(), nil
}

func (s *HeroService) load(ctx context.Context) *hero.Slides {
	slots, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to read hero images, using empty slideshow", zap.Error(err))
		return hero.NewSlides(nil)
	}
	return hero.NewSlides(slots)
}
