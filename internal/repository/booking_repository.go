package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	bookingDomain "github.com/sthemsandsaves/booking-backend/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BookingNumber   string          `gorm:"uniqueIndex;not null;size:20"`
	Mode            string          `gorm:"not null;size:20"`
	PackageID       *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceIDs      json.RawMessage `gorm:"type:jsonb"`
	CustomerName    string          `gorm:"not null;size:200"`
	CustomerEmail   string          `gorm:"not null;size:200;index"`
	CustomerPhone   string          `gorm:"not null;size:50"`
	Guests          int             `gorm:"not null"`
	CheckIn         time.Time       `gorm:"type:date;not null"`
	CheckOut        time.Time       `gorm:"type:date;not null"`
	TotalPriceCents int64           `gorm:"not null"`
	Currency        string          `gorm:"not null;size:3;default:'ZAR'"`
	Status          string          `gorm:"not null;size:30;index"`
	SpecialRequests string          `gorm:"size:1000"`
	ConfirmedAt     *time.Time      `gorm:""`
	CheckedInAt     *time.Time      `gorm:""`
	CheckedOutAt    *time.Time      `gorm:""`
	CancelledAt     *time.Time      `gorm:""`
	Version         int64           `gorm:"not null;default:1"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
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

// FindByID retrieves a booking by its unique identifier.
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, domain.NewUnavailableError("failed to find booking by ID", err)
	}
	return toDomainBooking(&model)
}

// FindByNumber retrieves a booking by its booking number.
func (r *GormBookingRepository) FindByNumber(ctx context.Context, number string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("booking_number = ?", number).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", number)
		}
		return nil, domain.NewUnavailableError("failed to find booking by number", err)
	}
	return toDomainBooking(&model)
}

// ListAll retrieves bookings newest-first with pagination (admin view).
func (r *GormBookingRepository) ListAll(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&BookingModel{}), page, limit)
}

// ListByStatus retrieves bookings in the given status, newest-first.
func (r *GormBookingRepository) ListByStatus(ctx context.Context, status bookingDomain.BookingStatus, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	query := r.db.WithContext(ctx).Model(&BookingModel{}).Where("status = ?", string(status))
	return r.list(ctx, query, page, limit)
}

func (r *GormBookingRepository) list(ctx context.Context, query *gorm.DB, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domain.NewUnavailableError("failed to count bookings", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, domain.NewUnavailableError("failed to list bookings", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bk, err := toDomainBooking(&m)
		if err != nil {
			return nil, 0, err
		}
		bookings[i] = bk
	}

	return bookings, total, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewUnavailableError("failed to save booking", err)
	}
	return nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return err
	}

	// Only update if the version matches (current version - 1, since
	// IncrementVersion was called before Update).
	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"confirmed_at":   model.ConfirmedAt,
			"checked_in_at":  model.CheckedInAt,
			"checked_out_at": model.CheckedOutAt,
			"cancelled_at":   model.CancelledAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return domain.NewUnavailableError("failed to update booking", result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}

	return nil
}

// Delete removes a booking unconditionally. Deleting an absent booking yields
// a NotFoundError.
func (r *GormBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookingModel{})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to delete booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", id.String())
	}
	return nil
}

// CountByStatus returns booking counts grouped by status (admin).
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
		return nil, domain.NewUnavailableError("failed to count by status", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Status] = sc.Count
	}
	return counts, nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) (*BookingModel, error) {
	var serviceIDsJSON json.RawMessage
	if bk.ServiceIDs() != nil {
		data, err := json.Marshal(bk.ServiceIDs())
		if err != nil {
			return nil, domain.NewUnavailableError("failed to marshal service IDs", err)
		}
		serviceIDsJSON = data
	}

	return &BookingModel{
		ID:              bk.ID(),
		BookingNumber:   bk.BookingNumber(),
		Mode:            string(bk.Mode()),
		PackageID:       bk.PackageID(),
		ServiceIDs:      serviceIDsJSON,
		CustomerName:    bk.CustomerName(),
		CustomerEmail:   bk.CustomerEmail(),
		CustomerPhone:   bk.CustomerPhone(),
		Guests:          bk.Guests(),
		CheckIn:         bk.CheckIn(),
		CheckOut:        bk.CheckOut(),
		TotalPriceCents: bk.TotalPriceCents(),
		Currency:        bk.Currency(),
		Status:          string(bk.Status()),
		SpecialRequests: bk.SpecialRequests(),
		ConfirmedAt:     bk.ConfirmedAt(),
		CheckedInAt:     bk.CheckedInAt(),
		CheckedOutAt:    bk.CheckedOutAt(),
		CancelledAt:     bk.CancelledAt(),
		Version:         bk.Version(),
		CreatedAt:       bk.CreatedAt(),
		UpdatedAt:       bk.UpdatedAt(),
	}, nil
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	var serviceIDs []uuid.UUID
	if len(m.ServiceIDs) > 0 {
		if err := json.Unmarshal(m.ServiceIDs, &serviceIDs); err != nil {
			return nil, domain.NewUnavailableError("failed to unmarshal service IDs", err)
		}
	}

	mode, err := bookingDomain.ParseBookingMode(m.Mode)
	if err != nil {
		return nil, err
	}

	status, err := bookingDomain.ParseBookingStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return bookingDomain.ReconstructBooking(
		m.ID,
		m.BookingNumber,
		mode,
		m.PackageID,
		serviceIDs,
		m.CustomerName,
		m.CustomerEmail,
		m.CustomerPhone,
		m.Guests,
		m.CheckIn,
		m.CheckOut,
		m.TotalPriceCents,
		m.Currency,
		status,
		m.SpecialRequests,
		m.ConfirmedAt,
		m.CheckedInAt,
		m.CheckedOutAt,
		m.CancelledAt,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}
