package booking

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
)

// DateLayout is the accepted format of the requested session date.
const DateLayout = "2006-01-02"

// Form is the public booking request as entered by a client.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Date:    strings.TrimSpace(f.Date),
		Type:    strings.TrimSpace(f.Type),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the required fields. Message is optional.
func (f Form) Validate() error {
	if f.Name == "" {
		return domain.NewValidationError("name is required")
	}
	if f.Email == "" {
		return domain.NewValidationError("email is required")
	}
	if addr, err := mail.ParseAddress(f.Email); err != nil || addr.Address != f.Email {
		return domain.NewValidationError("email is not a valid address")
	}
	if f.Date == "" {
		return domain.NewValidationError("date is required")
	}
	if _, err := time.Parse(DateLayout, f.Date); err != nil {
		return domain.NewValidationError("date must be formatted as YYYY-MM-DD")
	}
	if f.Type == "" {
		return domain.NewValidationError("session type is required")
	}
	return nil
}

// Booking is a session request. It is never mutated once created.
type Booking struct {
	id          uuid.UUID
	name        string
	email       string
	date        string
	sessionType string
	message     string
	status      BookingStatus
	createdAt   time.Time
}

// NewBooking validates form and creates a pending booking.
func NewBooking(form Form) (*Booking, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		name:        form.Name,
		email:       form.Email,
		date:        form.Date,
		sessionType: form.Type,
		message:     form.Message,
		status:      StatusPending,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(id uuid.UUID, name, email, date, sessionType, message string, status BookingStatus, createdAt time.Time) *Booking {
	return &Booking{
		id:          id,
		name:        name,
		email:       email,
		date:        date,
		sessionType: sessionType,
		message:     message,
		status:      status,
		createdAt:   createdAt,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Name returns the client's name.
func (b *Booking) Name() string { return b.name }

// Email returns the client's email address.
func (b *Booking) Email() string { return b.email }

// Date returns the requested session date (YYYY-MM-DD).
func (b *Booking) Date() string { return b.date }

// SessionType returns the requested session category.
func (b *Booking) SessionType() string { return b.sessionType }

// Message returns the client's free-text message.
func (b *Booking) Message() string { return b.message }

// Status returns the booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
