//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sthemsandsaves/booking-backend/internal/application"
	"github.com/sthemsandsaves/booking-backend/internal/domain"
	bookingEvents "github.com/sthemsandsaves/booking-backend/internal/events"
)

// TestCreateBooking_PersistsAndPublishes verifies that a submitted booking is
// stored in pending status with a server-computed total and that a
// booking.received event lands on booking.events.
func TestCreateBooking_PersistsAndPublishes(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	// Seed catalog through the admin path.
	attraction, err := stack.Catalog.CreateService(ctx, application.UpsertServiceRequest{
		Name:       "Game Drive",
		PriceCents: 20000,
		Category:   "attraction",
	})
	require.NoError(t, err)
	lodging, err := stack.Catalog.CreateService(ctx, application.UpsertServiceRequest{
		Name:       "Standard Room",
		PriceCents: 50000,
		Category:   "lodging",
	})
	require.NoError(t, err)

	created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		BookingType:    "flexible",
		ServiceIDs:     []uuid.UUID{attraction.ID, lodging.ID},
		CustomerName:   "Nomvula Dlamini",
		CustomerEmail:  "nomvula@example.com",
		CustomerPhone:  "+27821234567",
		NumberOfGuests: 2,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-13",
	})
	require.NoError(t, err)

	// (200.00 + 500.00 x 3 nights) x 2 guests
	assert.Equal(t, int64(340000), created.TotalPriceCents)
	assert.Equal(t, "ZAR", created.Currency)

	model := waitForBookingStatus(t, infra.DB, created.ID, "pending", 10*time.Second)
	assert.Equal(t, int64(340000), model.TotalPriceCents)
	assert.Equal(t, int64(1), model.Version)

	ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents,
		bookingEvents.BookingReceived, 15*time.Second)

	var received bookingEvents.BookingReceivedEvent
	require.NoError(t, ce.ParseData(&received))
	assert.Equal(t, created.ID, received.BookingID)
	assert.Equal(t, created.BookingNumber, received.BookingNumber)
	assert.Equal(t, int64(340000), received.TotalPriceCents)
}

// TestTransitionBooking_UpdatesStatusAndVersion verifies the admin status
// transition path end to end, including the status_changed event and the
// version bump used for optimistic locking.
func TestTransitionBooking_UpdatesStatusAndVersion(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	pkg, err := stack.Catalog.CreatePackage(ctx, application.UpsertPackageRequest{
		Name:         "Weekend Escape",
		DurationDays: 3,
		PriceCents:   350000,
	})
	require.NoError(t, err)

	created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		BookingType:    "package",
		PackageID:      &pkg.ID,
		CustomerName:   "Nomvula Dlamini",
		CustomerEmail:  "nomvula@example.com",
		CustomerPhone:  "+27821234567",
		NumberOfGuests: 2,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-13",
	})
	require.NoError(t, err)

	confirmed, err := stack.Service.TransitionBooking(ctx, created.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	model := waitForBookingStatus(t, infra.DB, created.ID, "confirmed", 10*time.Second)
	assert.Equal(t, int64(2), model.Version)
	assert.NotNil(t, model.ConfirmedAt)

	// Illegal skip is rejected and leaves the row untouched.
	_, err = stack.Service.TransitionBooking(ctx, created.ID, "checked_out")
	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	ce := consumeOneEvent(t, infra.KafkaBrokers, bookingEvents.TopicBookingEvents,
		bookingEvents.BookingStatusChanged, 15*time.Second)

	var changed bookingEvents.BookingStatusChangedEvent
	require.NoError(t, ce.ParseData(&changed))
	assert.Equal(t, created.ID, changed.BookingID)
	assert.Equal(t, "pending", changed.FromStatus)
	assert.Equal(t, "confirmed", changed.ToStatus)
}

// TestDeleteBooking_RemovesRow verifies the admin hard delete and that a
// second delete of the same booking reports not found.
func TestDeleteBooking_RemovesRow(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.DB, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()

	pkg, err := stack.Catalog.CreatePackage(ctx, application.UpsertPackageRequest{
		Name:         "Weekend Escape",
		DurationDays: 3,
		PriceCents:   350000,
	})
	require.NoError(t, err)

	created, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		BookingType:    "package",
		PackageID:      &pkg.ID,
		CustomerName:   "Nomvula Dlamini",
		CustomerEmail:  "nomvula@example.com",
		CustomerPhone:  "+27821234567",
		NumberOfGuests: 1,
		CheckInDate:    "2026-09-10",
		CheckOutDate:   "2026-09-12",
	})
	require.NoError(t, err)

	require.NoError(t, stack.Service.DeleteBooking(ctx, created.ID))

	_, err = stack.Service.GetBooking(ctx, created.ID)
	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	err = stack.Service.DeleteBooking(ctx, created.ID)
	require.ErrorAs(t, err, &notFoundErr)
}
