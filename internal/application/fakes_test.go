package application

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	bookingDomain "github.com/lostxrotimi/service-studio/internal/domain/booking"
	photoDomain "github.com/lostxrotimi/service-studio/internal/domain/photo"
)

var errBoom = errors.New("boom")

// memPhotoRepo is an in-memory PhotoRepository.
type memPhotoRepo struct {
	mu         sync.Mutex
	photos     map[uuid.UUID]*photoDomain.Photo
	saveErr    error
	listErr    error
	clearErr   error
	deleteErr  error
	saveCalls  int
	clearCalls int
}

func newMemPhotoRepo() *memPhotoRepo {
	return &memPhotoRepo{photos: map[uuid.UUID]*photoDomain.Photo{}}
}

func (r *memPhotoRepo) Save(_ context.Context, p *photoDomain.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.photos[p.ID()] = p
	return nil
}

func (r *memPhotoRepo) FindByID(_ context.Context, id uuid.UUID) (*photoDomain.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.photos[id]
	if !ok {
		return nil, domain.NewNotFoundError("Photo", id.String())
	}
	return p, nil
}

func (r *memPhotoRepo) ListRecent(context.Context) ([]*photoDomain.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*photoDomain.Photo, 0, len(r.photos))
	for _, p := range r.photos {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out, nil
}

func (r *memPhotoRepo) ClearPackageCover(_ context.Context, category photoDomain.Category) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearCalls++
	if r.clearErr != nil {
		return 0, r.clearErr
	}
	var n int64
	for id, p := range r.photos {
		if p.Category() == category && p.IsPackageCover() {
			r.photos[id] = photoDomain.Reconstruct(p.ID(), p.ImageURL(), p.Caption(), p.Category(), p.IsHighlight(), false, p.CreatedAt())
			n++
		}
	}
	return n, nil
}

func (r *memPhotoRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.photos[id]; !ok {
		return domain.NewNotFoundError("Photo", id.String())
	}
	delete(r.photos, id)
	return nil
}

// memBookingRepo is an in-memory BookingRepository.
type memBookingRepo struct {
	mu        sync.Mutex
	bookings  []*bookingDomain.Booking
	saveErr   error
	saveCalls int
}

func (r *memBookingRepo) Save(_ context.Context, bk *bookingDomain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.bookings = append([]*bookingDomain.Booking{bk}, r.bookings...)
	return nil
}

func (r *memBookingRepo) ListRecent(context.Context) ([]*bookingDomain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*bookingDomain.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out, nil
}

func (r *memBookingRepo) CountByStatus(context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, bk := range r.bookings {
		counts[bk.Status().String()]++
	}
	return counts, nil
}

// mockObjectStore records object store calls.
type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, name, reader, size, contentType)
	return args.Error(0)
}

func (m *mockObjectStore) PublicURL(name string) string {
	return "https://cdn.example.com/portfolio/" + name
}

func (m *mockObjectStore) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// mockCaptions is a CaptionGenerator mock.
type mockCaptions struct {
	mock.Mock
}

func (m *mockCaptions) Generate(ctx context.Context, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, data, mimeType)
	return args.String(0), args.Error(1)
}

// recordingPublisher keeps published event types.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
	keys   []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType, key string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	p.keys = append(p.keys, key)
}

// memHeroRepo is an in-memory hero.Repository.
type memHeroRepo struct {
	slots   []string
	loadErr error
	saveErr error
}

func (r *memHeroRepo) Load(context.Context) ([]string, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]string, len(r.slots))
	copy(out, r.slots)
	return out, nil
}

func (r *memHeroRepo) Save(_ context.Context, slots []string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.slots = append([]string(nil), slots...)
	return nil
}
