package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	pkgID := uuid.New()
	bk, err := NewBooking(
		ModePackage,
		&pkgID,
		nil,
		"Nomvula Dlamini",
		"nomvula@example.com",
		"+27821234567",
		2,
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		700000,
		"late arrival",
	)
	require.NoError(t, err)
	return bk
}

func TestNewBooking_Defaults(t *testing.T) {
	bk := newTestBooking(t)

	assert.Equal(t, StatusPending, bk.Status())
	assert.Equal(t, int64(1), bk.Version())
	assert.Equal(t, domain.CurrencyZAR, bk.Currency())
	assert.True(t, strings.HasPrefix(bk.BookingNumber(), "BK-"))
	assert.Len(t, bk.BookingNumber(), 9)
	assert.Equal(t, 3, bk.Nights())
	assert.Nil(t, bk.ConfirmedAt())
}

func TestNewBooking_Validation(t *testing.T) {
	pkgID := uuid.New()
	svcID := uuid.New()
	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		mode       BookingMode
		packageID  *uuid.UUID
		serviceIDs []uuid.UUID
		customer   string
		guests     int
		price      int64
	}{
		{"package mode without package", ModePackage, nil, nil, "Ann", 1, 1000},
		{"flexible mode without services", ModeFlexible, nil, nil, "Ann", 1, 1000},
		{"package mode with services", ModePackage, &pkgID, []uuid.UUID{svcID}, "Ann", 1, 1000},
		{"flexible mode with package", ModeFlexible, &pkgID, []uuid.UUID{svcID}, "Ann", 1, 1000},
		{"missing customer name", ModePackage, &pkgID, nil, "", 1, 1000},
		{"zero guests", ModePackage, &pkgID, nil, "Ann", 0, 1000},
		{"negative price", ModePackage, &pkgID, nil, "Ann", 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(
				tt.mode, tt.packageID, tt.serviceIDs,
				tt.customer, "ann@example.com", "+27820000000",
				tt.guests, checkIn, checkOut, tt.price, "",
			)
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestTransitionTo_FullLifecycle(t *testing.T) {
	bk := newTestBooking(t)

	require.NoError(t, bk.Confirm())
	assert.Equal(t, StatusConfirmed, bk.Status())
	assert.NotNil(t, bk.ConfirmedAt())

	require.NoError(t, bk.CheckInGuests())
	assert.Equal(t, StatusCheckedIn, bk.Status())
	assert.NotNil(t, bk.CheckedInAt())

	require.NoError(t, bk.CheckOutGuests())
	assert.Equal(t, StatusCheckedOut, bk.Status())
	assert.NotNil(t, bk.CheckedOutAt())
}

func TestTransitionTo_IllegalSkip(t *testing.T) {
	bk := newTestBooking(t)

	err := bk.CheckInGuests()

	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, StatusPending, bk.Status())
	assert.Nil(t, bk.CheckedInAt())
}

func TestTransitionTo_TerminalStatesRejectEverything(t *testing.T) {
	bk := newTestBooking(t)
	require.NoError(t, bk.Cancel())
	assert.NotNil(t, bk.CancelledAt())

	for _, target := range []BookingStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut} {
		err := bk.TransitionTo(target)
		var stateErr *domain.InvalidStateError
		require.ErrorAs(t, err, &stateErr, "cancelled -> %s", target)
	}
}

func TestCancel_AfterCheckInRejected(t *testing.T) {
	bk := newTestBooking(t)
	require.NoError(t, bk.Confirm())
	require.NoError(t, bk.CheckInGuests())

	err := bk.Cancel()

	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Nil(t, bk.CancelledAt())
}

func TestIncrementVersion(t *testing.T) {
	bk := newTestBooking(t)

	bk.IncrementVersion()

	assert.Equal(t, int64(2), bk.Version())
}
