// Package events defines the content event contract shared by publishers and consumers.
package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicContentEvents is the default topic carrying all content events.
const TopicContentEvents = "content.events"

// Event types.
const (
	PhotoUploaded    = "studio.photo.uploaded"
	PhotoDeleted     = "studio.photo.deleted"
	BookingSubmitted = "studio.booking.submitted"
)

// PhotoUploadedEvent is published after a photo record is inserted.
type PhotoUploadedEvent struct {
	PhotoID        uuid.UUID `json:"photo_id"`
	ImageURL       string    `json:"image_url"`
	Category       string    `json:"category"`
	IsHighlight    bool      `json:"is_highlight"`
	IsPackageCover bool      `json:"is_package_cover"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// PhotoDeletedEvent is published after a photo record is deleted.
type PhotoDeletedEvent struct {
	PhotoID    uuid.UUID `json:"photo_id"`
	ObjectName string    `json:"object_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingSubmittedEvent is published after a booking request is stored.
type BookingSubmittedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Date       string    `json:"date"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}
