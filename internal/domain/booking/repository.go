package booking

import (
	"context"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindByNumber(ctx context.Context, number string) (*Booking, error)
	// ListAll returns bookings newest-first with pagination (admin view).
	ListAll(ctx context.Context, page, limit int) ([]*Booking, int64, error)
	ListByStatus(ctx context.Context, status BookingStatus, page, limit int) ([]*Booking, int64, error)
	Save(ctx context.Context, bk *Booking) error
	// Update persists changes with optimistic locking; a version mismatch
	// yields a ConflictError and no state change.
	Update(ctx context.Context, bk *Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
