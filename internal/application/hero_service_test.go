package application

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	"github.com/lostxrotimi/service-studio/internal/domain/hero"
)

func TestHeroService_SetSlotPersistsWholeList(t *testing.T) {
	repo := &memHeroRepo{}
	svc := NewHeroService(repo, &mockObjectStore{}, zap.NewNop())

	slots, err := svc.SetSlot(context.Background(), 1, "https://cdn.example.com/portfolio/b.jpg")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "https://cdn.example.com/portfolio/b.jpg"}, slots)
	assert.Equal(t, slots, repo.slots)
	assert.Equal(t, []string{"https://cdn.example.com/portfolio/b.jpg"}, svc.Active(context.Background()))
}

func TestHeroService_ClearSlot(t *testing.T) {
	repo := &memHeroRepo{slots: []string{"a", "b", "c"}}
	svc := NewHeroService(repo, &mockObjectStore{}, zap.NewNop())

	slots, err := svc.ClearSlot(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "b", "c"}, slots)
	assert.Equal(t, []string{"b", "c"}, svc.Active(context.Background()))
}

func TestHeroService_Validation(t *testing.T) {
	svc := NewHeroService(&memHeroRepo{}, &mockObjectStore{}, zap.NewNop())

	_, err := svc.SetSlot(context.Background(), 0, "")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.SetSlot(context.Background(), 3, "x")
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestHeroService_UnreadableStoreIsEmpty(t *testing.T) {
	svc := NewHeroService(&memHeroRepo{loadErr: errBoom}, &mockObjectStore{}, zap.NewNop())

	assert.Empty(t, svc.Slots(context.Background()))
	assert.Empty(t, svc.Active(context.Background()))
}

func TestHeroService_ReadFailureKeepsStoredSlots(t *testing.T) {
	repo := &memHeroRepo{slots: []string{"a", "b", "c"}, loadErr: errBoom}
	svc := NewHeroService(repo, &mockObjectStore{}, zap.NewNop())

	_, err := svc.SetSlot(context.Background(), 2, "z")
	assert.True(t, domain.IsKind(err, domain.KindStoreRead))

	_, err = svc.ClearSlot(context.Background(), 0)
	assert.True(t, domain.IsKind(err, domain.KindStoreRead))

	assert.Equal(t, []string{"a", "b", "c"}, repo.slots)
}

func TestHeroService_UndecodableStoreIsReplaced(t *testing.T) {
	repo := &memHeroRepo{slots: []string{"a"}, loadErr: fmt.Errorf("%w: bad json", hero.ErrUndecodable)}
	svc := NewHeroService(repo, &mockObjectStore{}, zap.NewNop())

	slots, err := svc.SetSlot(context.Background(), 1, "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "z"}, slots)
	assert.Equal(t, []string{"", "z"}, repo.slots)
}

func TestHeroService_SaveFailure(t *testing.T) {
	svc := NewHeroService(&memHeroRepo{saveErr: errBoom}, &mockObjectStore{}, zap.NewNop())

	_, err := svc.SetSlot(context.Background(), 0, "x")
	assert.True(t, domain.IsKind(err, domain.KindStoreWrite))
}

func TestHeroService_UploadSlot(t *testing.T) {
	repo := &memHeroRepo{}
	objects := &mockObjectStore{}
	var uploaded string
	objects.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Run(func(args mock.Arguments) { uploaded = args.String(1) }).
		Return(nil).Once()
	svc := NewHeroService(repo, objects, zap.NewNop())

	slots, err := svc.UploadSlot(context.Background(), 2, jpegFile("banner.jpeg"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploaded, "hero-"))
	assert.True(t, strings.HasSuffix(uploaded, ".jpeg"))
	assert.Equal(t, []string{"", "", objects.PublicURL(uploaded)}, slots)
	objects.AssertExpectations(t)
}

func TestHeroService_UploadSlot_InvalidIndexSkipsUpload(t *testing.T) {
	objects := &mockObjectStore{}
	svc := NewHeroService(&memHeroRepo{}, objects, zap.NewNop())

	_, err := svc.UploadSlot(context.Background(), 5, jpegFile("banner.jpg"))
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	objects.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHeroService_UploadSlot_SaveFailureRemovesObject(t *testing.T) {
	objects := &mockObjectStore{}
	var uploaded string
	objects.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { uploaded = args.String(1) }).
		Return(nil)
	objects.On("Remove", mock.Anything, mock.Anything).Return(nil)
	svc := NewHeroService(&memHeroRepo{saveErr: errBoom}, objects, zap.NewNop())

	_, err := svc.UploadSlot(context.Background(), 0, jpegFile("banner.jpg"))
	require.Error(t, err)
	objects.AssertCalled(t, "Remove", mock.Anything, uploaded)
}
