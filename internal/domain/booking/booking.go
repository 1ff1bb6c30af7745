package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

const bookingNumberChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// BookingMode selects how a reservation is assembled: from a fixed package or
// an ad-hoc selection of services.
type BookingMode string

const (
	ModePackage  BookingMode = "package"
	ModeFlexible BookingMode = "flexible"
)

// IsValid returns true if the mode is recognized.
func (m BookingMode) IsValid() bool {
	return m == ModePackage || m == ModeFlexible
}

// ParseBookingMode converts a string to a BookingMode.
func ParseBookingMode(s string) (BookingMode, error) {
	mode := BookingMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid booking mode: %s", s)
	}
	return mode, nil
}

// Booking is the aggregate root for the booking domain. Total price and guest
// count are snapshots taken at creation; later catalog edits do not recompute.
type Booking struct {
	id            uuid.UUID
	bookingNumber string
	mode          BookingMode
	packageID     *uuid.UUID
	serviceIDs    []uuid.UUID
	customerName  string
	customerEmail string
	customerPhone string
	guests        int
	checkIn       time.Time
	checkOut      time.Time

	totalPriceCents int64
	currency        string

	status          BookingStatus
	specialRequests string

	confirmedAt  *time.Time
	checkedInAt  *time.Time
	checkedOutAt *time.Time
	cancelledAt  *time.Time

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// generateBookingNumber creates a booking number in the format "BK-XXXXXX".
func generateBookingNumber() (string, error) {
	result := make([]byte, 6)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(bookingNumberChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate booking number: %w", err)
		}
		result[i] = bookingNumberChars[n.Int64()]
	}
	return "BK-" + string(result), nil
}

// NewBooking creates a new Booking aggregate with status=pending.
func NewBooking(
	mode BookingMode,
	packageID *uuid.UUID,
	serviceIDs []uuid.UUID,
	customerName, customerEmail, customerPhone string,
	guests int,
	checkIn, checkOut time.Time,
	totalPriceCents int64,
	specialRequests string,
) (*Booking, error) {
	if !mode.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid booking mode: %s", mode))
	}
	if mode == ModePackage && packageID == nil {
		return nil, domain.NewValidationError("a package must be selected for package bookings")
	}
	if mode == ModeFlexible && len(serviceIDs) == 0 {
		return nil, domain.NewValidationError("at least one service must be selected for flexible bookings")
	}
	if mode == ModePackage && len(serviceIDs) > 0 {
		return nil, domain.NewValidationError("package bookings cannot carry a service selection")
	}
	if mode == ModeFlexible && packageID != nil {
		return nil, domain.NewValidationError("flexible bookings cannot reference a package")
	}
	if customerName == "" {
		return nil, domain.NewValidationError("customer name is required")
	}
	if customerEmail == "" {
		return nil, domain.NewValidationError("customer email is required")
	}
	if customerPhone == "" {
		return nil, domain.NewValidationError("customer phone is required")
	}
	if guests < 1 {
		return nil, domain.NewValidationError("guest count must be at least 1")
	}
	if totalPriceCents < 0 {
		return nil, domain.NewValidationError("total price cannot be negative")
	}

	bookingNumber, err := generateBookingNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Booking{
		id:              uuid.New(),
		bookingNumber:   bookingNumber,
		mode:            mode,
		packageID:       packageID,
		serviceIDs:      serviceIDs,
		customerName:    customerName,
		customerEmail:   customerEmail,
		customerPhone:   customerPhone,
		guests:          guests,
		checkIn:         checkIn,
		checkOut:        checkOut,
		totalPriceCents: totalPriceCents,
		currency:        domain.CurrencyZAR,
		status:          StatusPending,
		specialRequests: specialRequests,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	bookingNumber string,
	mode BookingMode,
	packageID *uuid.UUID,
	serviceIDs []uuid.UUID,
	customerName, customerEmail, customerPhone string,
	guests int,
	checkIn, checkOut time.Time,
	totalPriceCents int64,
	currency string,
	status BookingStatus,
	specialRequests string,
	confirmedAt, checkedInAt, checkedOutAt, cancelledAt *time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		bookingNumber:   bookingNumber,
		mode:            mode,
		packageID:       packageID,
		serviceIDs:      serviceIDs,
		customerName:    customerName,
		customerEmail:   customerEmail,
		customerPhone:   customerPhone,
		guests:          guests,
		checkIn:         checkIn,
		checkOut:        checkOut,
		totalPriceCents: totalPriceCents,
		currency:        currency,
		status:          status,
		specialRequests: specialRequests,
		confirmedAt:     confirmedAt,
		checkedInAt:     checkedInAt,
		checkedOutAt:    checkedOutAt,
		cancelledAt:     cancelledAt,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// BookingNumber returns the human-readable booking number.
func (b *Booking) BookingNumber() string { return b.bookingNumber }

// Mode returns the booking mode.
func (b *Booking) Mode() BookingMode { return b.mode }

// PackageID returns the referenced package, or nil for flexible bookings.
func (b *Booking) PackageID() *uuid.UUID { return b.packageID }

// ServiceIDs returns the selected services, or nil for package bookings.
func (b *Booking) ServiceIDs() []uuid.UUID { return b.serviceIDs }

// CustomerName returns the customer's full name.
func (b *Booking) CustomerName() string { return b.customerName }

// CustomerEmail returns the customer's email address.
func (b *Booking) CustomerEmail() string { return b.customerEmail }

// CustomerPhone returns the customer's phone number.
func (b *Booking) CustomerPhone() string { return b.customerPhone }

// Guests returns the guest count.
func (b *Booking) Guests() int { return b.guests }

// CheckIn returns the check-in date.
func (b *Booking) CheckIn() time.Time { return b.checkIn }

// CheckOut returns the check-out date.
func (b *Booking) CheckOut() time.Time { return b.checkOut }

// TotalPriceCents returns the total price snapshot in cents.
func (b *Booking) TotalPriceCents() int64 { return b.totalPriceCents }

// Currency returns the currency code.
func (b *Booking) Currency() string { return b.currency }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// SpecialRequests returns the customer's free-text requests.
func (b *Booking) SpecialRequests() string { return b.specialRequests }

// ConfirmedAt returns the time the booking was confirmed.
func (b *Booking) ConfirmedAt() *time.Time { return b.confirmedAt }

// CheckedInAt returns the time the guests checked in.
func (b *Booking) CheckedInAt() *time.Time { return b.checkedInAt }

// CheckedOutAt returns the time the guests checked out.
func (b *Booking) CheckedOutAt() *time.Time { return b.checkedOutAt }

// CancelledAt returns the time the booking was cancelled.
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Nights returns the night count between check-in and check-out.
func (b *Booking) Nights() int { return NightsBetween(b.checkIn, b.checkOut) }

// --- Behavior ---

// TransitionTo moves the booking to the target status if the transition table
// allows it, stamping the matching lifecycle timestamp.
func (b *Booking) TransitionTo(target BookingStatus) error {
	if !b.status.CanTransitionTo(target) {
		return domain.NewInvalidStateError(string(b.status), string(target))
	}

	now := time.Now().UTC()
	switch target {
	case StatusConfirmed:
		b.confirmedAt = &now
	case StatusCheckedIn:
		b.checkedInAt = &now
	case StatusCheckedOut:
		b.checkedOutAt = &now
	case StatusCancelled:
		b.cancelledAt = &now
	}
	b.status = target
	b.updatedAt = now
	return nil
}

// Confirm transitions the booking from pending to confirmed.
func (b *Booking) Confirm() error { return b.TransitionTo(StatusConfirmed) }

// CheckInGuests transitions the booking from confirmed to checked_in.
func (b *Booking) CheckInGuests() error { return b.TransitionTo(StatusCheckedIn) }

// CheckOutGuests transitions the booking from checked_in to checked_out.
func (b *Booking) CheckOutGuests() error { return b.TransitionTo(StatusCheckedOut) }

// Cancel transitions the booking to cancelled if it is not in a terminal state.
func (b *Booking) Cancel() error { return b.TransitionTo(StatusCancelled) }

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
