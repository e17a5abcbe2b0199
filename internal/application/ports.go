package application

import (
	"context"
	"io"
)

// ObjectStore holds the binary image objects behind photos and hero slides.
type ObjectStore interface {
	Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	PublicURL(name string) string
	Remove(ctx context.Context, name string) error
}

// CaptionGenerator produces an advisory caption for an image.
type CaptionGenerator interface {
	Generate(ctx context.Context, data []byte, mimeType string) (string, error)
}

// EventPublisher announces content changes. Publishing is fire-and-forget:
// implementations log failures instead of returning them.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data any)
}

// UploadFile is an uploaded binary payload.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// NopPublisher discards events. Used when no event bus is configured.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, string, string, any) {}
