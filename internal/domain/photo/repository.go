package photo

import (
	"context"

	"github.com/google/uuid"
)

// PhotoRepository defines persistence operations for portfolio photos.
type PhotoRepository interface {
	// Save inserts a new photo record.
	Save(ctx context.Context, photo *Photo) error

	// FindByID returns a single photo.
	FindByID(ctx context.Context, id uuid.UUID) (*Photo, error)

	// ListRecent returns every photo, newest first.
	ListRecent(ctx context.Context) ([]*Photo, error)

	// ClearPackageCover unsets the cover flag on every photo in category and
	// returns the number of records changed.
	ClearPackageCover(ctx context.Context, category Category) (int64, error)

	// Delete removes a photo record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
