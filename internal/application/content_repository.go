package application

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	bookingDomain "github.com/lostxrotimi/service-studio/internal/domain/booking"
	photoDomain "github.com/lostxrotimi/service-studio/internal/domain/photo"
)

// SetupInstruction is shown to the operator while the schema is missing.
const SetupInstruction = "The photos and bookings tables do not exist yet. Run the service once with STUDIO_APP_ENV=development to auto-migrate, or apply the schema migration to the database."

// ContentRepository caches photos and bookings from the record store. Reads never
// fail: a failed fetch is logged and the affected collection is treated as empty.
type ContentRepository struct {
	photos   photoDomain.PhotoRepository
	bookings bookingDomain.BookingRepository
	logger   *zap.Logger

	mu            sync.RWMutex
	photoCache    []*photoDomain.Photo
	bookingCache  []*bookingDomain.Booking
	schemaMissing bool
	loadedAt      time.Time
}

// NewContentRepository creates an empty cache. Call Load to populate it.
func NewContentRepository(photos photoDomain.PhotoRepository, bookings bookingDomain.BookingRepository, logger *zap.Logger) *ContentRepository {
	return &ContentRepository{
		photos:       photos,
		bookings:     bookings,
		logger:       logger,
		photoCache:   []*photoDomain.Photo{},
		bookingCache: []*bookingDomain.Booking{},
	}
}

// Load refreshes both collections.
func (r *ContentRepository) Load(ctx context.Context) {
	r.loadPhotos(ctx)
	r.ReloadBookings(ctx)

	r.mu.Lock()
	r.loadedAt = time.Now().UTC()
	r.mu.Unlock()
}

func (r *ContentRepository) loadPhotos(ctx context.Context) {
	photos, err := r.photos.ListRecent(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case err == nil:
		r.photoCache = photos
		r.schemaMissing = false
	case domain.IsKind(err, domain.KindSchemaMissing):
		r.logger.Warn("photos table missing, admin setup required", zap.Error(err))
		r.photoCache = []*photoDomain.Photo{}
		r.schemaMissing = true
	default:
		r.logger.Error("failed to load photos", zap.Error(err))
		r.photoCache = []*photoDomain.Photo{}
	}
}

// ReloadBookings refreshes the booking collection only.
func (r *ContentRepository) ReloadBookings(ctx context.Context) {
	bookings, err := r.bookings.ListRecent(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.logger.Error("failed to load bookings", zap.Error(err))
		r.bookingCache = []*bookingDomain.Booking{}
		return
	}
	r.bookingCache = bookings
}

// Photos returns the cached photos, newest first.
func (r *ContentRepository) Photos() []*photoDomain.Photo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*photoDomain.Photo, len(r.photoCache))
	copy(out, r.photoCache)
	return out
}

// Bookings returns the cached bookings, newest first.
func (r *ContentRepository) Bookings() []*bookingDomain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*bookingDomain.Booking, len(r.bookingCache))
	copy(out, r.bookingCache)
	return out
}

// FindPhoto looks up a cached photo.
func (r *ContentRepository) FindPhoto(id uuid.UUID) (*photoDomain.Photo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.photoCache {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// RemovePhoto drops a photo from the cache without a reload.
func (r *ContentRepository) RemovePhoto(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.photoCache {
		if p.ID() == id {
			next := make([]*photoDomain.Photo, 0, len(r.photoCache)-1)
			next = append(next, r.photoCache[:i]...)
			next = append(next, r.photoCache[i+1:]...)
			r.photoCache = next
			return true
		}
	}
	return false
}

// SchemaMissing reports whether the last photo load found no photos table.
func (r *ContentRepository) SchemaMissing() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemaMissing
}

// LoadedAt returns the time of the last full load.
func (r *ContentRepository) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

// RequireSchema returns a SchemaMissing error when writes must be blocked.
func (r *ContentRepository) RequireSchema() error {
	if r.SchemaMissing() {
		return domain.NewSchemaMissingError(SetupInstruction, nil)
	}
	return nil
}
