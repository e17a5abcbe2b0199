package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	photoDomain "github.com/lostxrotimi/service-studio/internal/domain/photo"
	"github.com/lostxrotimi/service-studio/internal/proto/events"
)

// MaxCaptionImageBytes bounds the image payload accepted for caption generation.
const MaxCaptionImageBytes = 20 << 20

// UploadPhotoRequest holds the admin upload form.
type UploadPhotoRequest struct {
	File           *UploadFile
	Caption        string
	Category       string
	IsHighlight    bool
	IsPackageCover bool
}

// AdminService runs the multi-step admin writes against the record and object stores.
//
// Upload steps and their failure policy:
//  1. validate input                      abort, nothing written
//  2. reset cover flags in the category   best-effort, logged
//  3. upload the object                   abort
//  4. resolve the public URL              cannot fail
//  5. insert the record                   abort, and remove the object from step 3
//  6. reload the content cache
//
// Delete steps:
//  1. require confirmation                abort
//  2. remove the object                   best-effort, logged
//  3. delete the record                   abort
//  4. drop the photo from the cache
type AdminService struct {
	photos    photoDomain.PhotoRepository
	content   *ContentRepository
	objects   ObjectStore
	captions  CaptionGenerator
	publisher EventPublisher
	names     *objectNamer
	logger    *zap.Logger

	// mu serializes admin writes so two uploads cannot interleave their
	// cover-reset and insert steps.
	mu sync.Mutex
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	photos photoDomain.PhotoRepository,
	content *ContentRepository,
	objects ObjectStore,
	captions CaptionGenerator,
	publisher EventPublisher,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		photos:    photos,
		content:   content,
		objects:   objects,
		captions:  captions,
		publisher: publisher,
		names:     newObjectNamer(),
		logger:    logger,
	}
}

// Upload stores a new portfolio photo.
func (s *AdminService) Upload(ctx context.Context, req UploadPhotoRequest) (*PhotoDTO, error) {
	if req.File == nil || req.File.Reader == nil {
		return nil, domain.NewValidationError("file is required")
	}
	if err := s.content.RequireSchema(); err != nil {
		return nil, err
	}

	category := photoDomain.ParseCategory(req.Category)

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.IsPackageCover {
		cleared, err := s.photos.ClearPackageCover(ctx, category)
		if err != nil {
			s.logger.Warn("failed to reset package cover, continuing upload",
				zap.String("category", string(category)),
				zap.Error(err),
			)
		} else if cleared > 0 {
			s.logger.Info("package cover reset",
				zap.String("category", string(category)),
				zap.Int64("photos", cleared),
			)
		}
	}

	name := s.names.next(req.File.Filename)
	if err := s.objects.Upload(ctx, name, req.File.Reader, req.File.Size, req.File.ContentType); err != nil {
		return nil, domain.NewStoreWriteError("failed to upload image", err)
	}

	photo, err := photoDomain.NewPhoto(s.objects.PublicURL(name), req.Caption, category, req.IsHighlight, req.IsPackageCover)
	if err != nil {
		s.removeOrphan(ctx, name)
		return nil, err
	}

	if err := s.photos.Save(ctx, photo); err != nil {
		s.removeOrphan(ctx, name)
		if domain.IsKind(err, domain.KindSchemaMissing) {
			return nil, err
		}
		return nil, domain.NewStoreWriteError("failed to save photo", err)
	}

	s.logger.Info("photo uploaded",
		zap.String("photo_id", photo.ID().String()),
		zap.String("object", name),
		zap.String("category", string(category)),
		zap.Bool("highlight", req.IsHighlight),
		zap.Bool("package_cover", req.IsPackageCover),
	)

	s.content.Load(ctx)
	s.publisher.Publish(ctx, events.PhotoUploaded, photo.ID().String(), events.PhotoUploadedEvent{
		PhotoID:        photo.ID(),
		ImageURL:       photo.ImageURL(),
		Category:       string(photo.Category()),
		IsHighlight:    photo.IsHighlight(),
		IsPackageCover: photo.IsPackageCover(),
		OccurredAt:     time.Now().UTC(),
	})

	dto := toPhotoDTO(photo)
	return &dto, nil
}

// DeletePhoto removes a photo's object and record. confirmed must be true.
func (s *AdminService) DeletePhoto(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return domain.NewValidationError("deletion must be confirmed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	photo, ok := s.content.FindPhoto(id)
	if !ok {
		found, err := s.photos.FindByID(ctx, id)
		if err != nil {
			return err
		}
		photo = found
	}

	objectName := photo.ObjectName()
	if objectName != "" {
		if err := s.objects.Remove(ctx, objectName); err != nil {
			s.logger.Warn("failed to remove photo object, deleting record anyway",
				zap.String("photo_id", id.String()),
				zap.String("object", objectName),
				zap.Error(err),
			)
		}
	}

	if err := s.photos.Delete(ctx, id); err != nil {
		if domain.IsKind(err, domain.KindNotFound) || domain.IsKind(err, domain.KindSchemaMissing) {
			return err
		}
		return domain.NewStoreWriteError("failed to delete photo", err)
	}

	s.content.RemovePhoto(id)
	s.logger.Info("photo deleted", zap.String("photo_id", id.String()), zap.String("object", objectName))

	s.publisher.Publish(ctx, events.PhotoDeleted, id.String(), events.PhotoDeletedEvent{
		PhotoID:    id,
		ObjectName: objectName,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// GenerateCaption asks the caption generator for a caption. Failures are advisory.
func (s *AdminService) GenerateCaption(ctx context.Context, file *UploadFile) (string, error) {
	if file == nil || file.Reader == nil {
		return "", domain.NewValidationError("file is required")
	}

	data, err := io.ReadAll(io.LimitReader(file.Reader, MaxCaptionImageBytes+1))
	if err != nil {
		return "", domain.NewValidationError(fmt.Sprintf("failed to read file: %v", err))
	}
	if len(data) > MaxCaptionImageBytes {
		return "", domain.NewValidationError("image is too large for caption generation")
	}

	return s.captions.Generate(ctx, data, file.ContentType)
}

// Reload forces a full content cache refresh.
func (s *AdminService) Reload(ctx context.Context) {
	s.content.Load(ctx)
}

func (s *AdminService) removeOrphan(ctx context.Context, name string) {
	if err := s.objects.Remove(ctx, name); err != nil {
		s.logger.Error("failed to remove orphaned object after insert failure",
			zap.String("object", name),
			zap.Error(err),
		)
	}
}
