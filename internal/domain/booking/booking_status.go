package booking

import (
	"fmt"
	"strings"
)

// BookingStatus represents the review state of a booking request.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusArchived  BookingStatus = "archived"
)

// validStatuses lists every status the store may hold. Only pending is produced
// by this service; the others are set out-of-band.
var validStatuses = map[BookingStatus]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusArchived:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validStatuses[s]
	return exists
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, ignoring case and
// surrounding space. Unknown values are an error.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
