package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingDomain "github.com/lostxrotimi/service-studio/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;size:200"`
	Email     string    `gorm:"not null;size:320"`
	Date      string    `gorm:"not null;size:10"`
	Type      string    `gorm:"not null;size:100"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"not null;size:20;index;default:'pending'"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	return classify("failed to save booking", r.db.WithContext(ctx).Create(&model).Error)
}

// ListRecent retrieves every booking, newest first.
func (r *GormBookingRepository) ListRecent(ctx context.Context) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, classify("failed to list bookings", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toDomainBooking(&models[i])
	}
	return bookings, nil
}

// CountByStatus returns booking counts grouped by status.
func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&results).Error; err != nil {
		return nil, classify("failed to count by status", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) BookingModel {
	return BookingModel{
		ID:        bk.ID(),
		Name:      bk.Name(),
		Email:     bk.Email(),
		Date:      bk.Date(),
		Type:      bk.SessionType(),
		Message:   bk.Message(),
		Status:    string(bk.Status()),
		CreatedAt: bk.CreatedAt(),
	}
}

// toDomainBooking keeps an unrecognized status as stored instead of failing the row.
func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		status = bookingDomain.BookingStatus(m.Status)
	}

	return bookingDomain.ReconstructBooking(
		m.ID,
		m.Name,
		m.Email,
		m.Date,
		m.Type,
		m.Message,
		status,
		m.CreatedAt,
	)
}
