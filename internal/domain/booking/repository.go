package booking

import "context"

// BookingRepository defines the persistence contract for booking requests.
type BookingRepository interface {
	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// ListRecent retrieves every booking, newest first.
	ListRecent(ctx context.Context) ([]*Booking, error)

	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
