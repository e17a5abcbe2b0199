package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/common/domain"
	bookingDomain "github.com/lostxrotimi/service-studio/internal/domain/booking"
	"github.com/lostxrotimi/service-studio/internal/proto/events"
)

// SubmitBookingRequest holds the public booking form. Required fields are
// checked by the domain so a failed submission can still report its state.
type SubmitBookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Form converts the request into the domain form.
func (r SubmitBookingRequest) Form() bookingDomain.Form {
	return bookingDomain.Form{
		Name:    r.Name,
		Email:   r.Email,
		Date:    r.Date,
		Type:    r.Type,
		Message: r.Message,
	}
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmissionDTO reports where a submission ended up.
type SubmissionDTO struct {
	State   string      `json:"state"`
	Booking *BookingDTO `json:"booking,omitempty"`
}

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	repo      bookingDomain.BookingRepository
	content   *ContentRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	content *ContentRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		content:   content,
		publisher: publisher,
		logger:    logger,
	}
}

// Submit drives sub through idle → submitting → success|error for form.
// Validation and schema failures leave sub idle.
func (s *BookingService) Submit(ctx context.Context, sub *bookingDomain.Submission, form bookingDomain.Form) (*BookingDTO, error) {
	if err := sub.SetForm(form); err != nil {
		return nil, err
	}

	bk, err := bookingDomain.NewBooking(form)
	if err != nil {
		return nil, err
	}
	if err := s.content.RequireSchema(); err != nil {
		return nil, err
	}

	if err := sub.Begin(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		s.logger.Error("failed to save booking", zap.String("booking_id", bk.ID().String()), zap.Error(err))
		if !domain.IsKind(err, domain.KindSchemaMissing) {
			err = domain.NewStoreWriteError("failed to save booking", err)
		}
		if failErr := sub.Fail(err); failErr != nil {
			return nil, failErr
		}
		return nil, err
	}

	s.content.ReloadBookings(ctx)
	s.logger.Info("booking submitted",
		zap.String("booking_id", bk.ID().String()),
		zap.String("type", bk.SessionType()),
		zap.String("date", bk.Date()),
	)

	s.publisher.Publish(ctx, events.BookingSubmitted, bk.ID().String(), events.BookingSubmittedEvent{
		BookingID:  bk.ID(),
		Name:       bk.Name(),
		Email:      bk.Email(),
		Date:       bk.Date(),
		Type:       bk.SessionType(),
		OccurredAt: time.Now().UTC(),
	})

	if err := sub.Succeed(); err != nil {
		return nil, err
	}

	result := toBookingDTO(bk)
	return &result, nil
}

// --- Admin methods ---

// ListBookings returns the cached bookings, newest first.
func (s *BookingService) ListBookings() []BookingDTO {
	bookings := s.content.Bookings()
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}

// GetBookingStats returns aggregate booking statistics.
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		if domain.IsKind(err, domain.KindSchemaMissing) {
			return nil, err
		}
		return nil, domain.NewStoreReadError("failed to get booking stats", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &BookingStatsDTO{
		TotalBookings: total,
		ByStatus:      counts,
	}, nil
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:        bk.ID(),
		Name:      bk.Name(),
		Email:     bk.Email(),
		Date:      bk.Date(),
		Type:      bk.SessionType(),
		Message:   bk.Message(),
		Status:    bk.Status().String(),
		CreatedAt: bk.CreatedAt(),
	}
}

// SubmissionResult describes a finished submission for the API response.
func SubmissionResult(sub *bookingDomain.Submission, booking *BookingDTO) SubmissionDTO {
	return SubmissionDTO{State: string(sub.State()), Booking: booking}
}
