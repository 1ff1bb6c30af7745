package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	bookingDomain "github.com/sthemsandsaves/booking-backend/internal/domain/booking"
	"github.com/sthemsandsaves/booking-backend/internal/domain/catalog"
	"github.com/sthemsandsaves/booking-backend/internal/events"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	BookingType     string      `json:"booking_type" binding:"required"`
	PackageID       *uuid.UUID  `json:"package_id"`
	ServiceIDs      []uuid.UUID `json:"service_ids"`
	CustomerName    string      `json:"customer_name" binding:"required"`
	CustomerEmail   string      `json:"customer_email" binding:"required,email"`
	CustomerPhone   string      `json:"customer_phone" binding:"required"`
	NumberOfGuests  int         `json:"number_of_guests" binding:"required"`
	CheckInDate     string      `json:"check_in_date" binding:"required"`
	CheckOutDate    string      `json:"check_out_date" binding:"required"`
	SpecialRequests string      `json:"special_requests"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID              uuid.UUID   `json:"id"`
	BookingNumber   string      `json:"booking_number"`
	BookingType     string      `json:"booking_type"`
	PackageID       *uuid.UUID  `json:"package_id,omitempty"`
	ServiceIDs      []uuid.UUID `json:"service_ids,omitempty"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	NumberOfGuests  int         `json:"number_of_guests"`
	CheckInDate     string      `json:"check_in_date"`
	CheckOutDate    string      `json:"check_out_date"`
	Nights          int         `json:"nights"`
	TotalPriceCents int64       `json:"total_price_cents"`
	Currency        string      `json:"currency"`
	Status          string      `json:"status"`
	SpecialRequests string      `json:"special_requests,omitempty"`
	ConfirmedAt     *time.Time  `json:"confirmed_at,omitempty"`
	CheckedInAt     *time.Time  `json:"checked_in_at,omitempty"`
	CheckedOutAt    *time.Time  `json:"checked_out_at,omitempty"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
	Version         int64       `json:"version"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	bookings bookingDomain.BookingRepository
	services catalog.ServiceRepository
	packages catalog.PackageRepository
	pricing  bookingDomain.PricingStrategy
	producer events.Publisher
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	services catalog.ServiceRepository,
	packages catalog.PackageRepository,
	pricing bookingDomain.PricingStrategy,
	producer events.Publisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		services: services,
		packages: packages,
		pricing:  pricing,
		producer: producer,
		logger:   logger,
	}
}

// CreateBooking validates the request, computes the total price server-side
// and persists the booking in pending status.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	mode, err := bookingDomain.ParseBookingMode(req.BookingType)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return nil, domain.NewValidationError("check_in_date must be formatted YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return nil, domain.NewValidationError("check_out_date must be formatted YYYY-MM-DD")
	}

	params := bookingDomain.PricingParams{
		Mode:     mode,
		Guests:   req.NumberOfGuests,
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	}

	switch mode {
	case bookingDomain.ModePackage:
		if req.PackageID == nil {
			return nil, domain.NewValidationError("a package must be selected for package bookings")
		}
		pkg, err := s.packages.FindByID(ctx, *req.PackageID)
		if err != nil {
			return nil, err
		}
		if !pkg.IsActive() {
			return nil, domain.NewValidationError("the selected package is no longer available")
		}
		params.Package = pkg

	case bookingDomain.ModeFlexible:
		selected, err := s.loadSelectedServices(ctx, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		params.Services = selected
	}

	totalCents, err := s.pricing.Calculate(params)
	if err != nil {
		return nil, err
	}

	var packageID *uuid.UUID
	var serviceIDs []uuid.UUID
	if mode == bookingDomain.ModePackage {
		packageID = req.PackageID
	} else {
		serviceIDs = req.ServiceIDs
	}

	bk, err := bookingDomain.NewBooking(
		mode,
		packageID,
		serviceIDs,
		req.CustomerName,
		req.CustomerEmail,
		req.CustomerPhone,
		req.NumberOfGuests,
		checkIn,
		checkOut,
		totalCents,
		req.SpecialRequests,
	)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, err
	}

	s.publishBookingReceived(ctx, bk)

	result := toBookingDTO(bk)
	return &result, nil
}

// loadSelectedServices fetches the selected services, preserving the
// customer's selection order so the first-lodging pricing rule sees the same
// sequence the form submitted.
func (s *BookingService) loadSelectedServices(ctx context.Context, ids []uuid.UUID) ([]*catalog.Service, error) {
	if len(ids) == 0 {
		return nil, domain.NewValidationError("at least one service must be selected for flexible bookings")
	}

	found, err := s.services.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*catalog.Service, len(found))
	for _, svc := range found {
		byID[svc.ID()] = svc
	}

	ordered := make([]*catalog.Service, 0, len(ids))
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return nil, domain.NewValidationError("one or more selected services do not exist")
		}
		if !svc.IsActive() {
			return nil, domain.NewValidationError("one or more selected services are no longer available")
		}
		ordered = append(ordered, svc)
	}
	return ordered, nil
}

// TransitionBooking moves a booking to the target status if the transition
// table allows it. The storage update is conditional on the version observed
// at read time; a concurrent change yields a ConflictError.
func (s *BookingService) TransitionBooking(ctx context.Context, bookingID uuid.UUID, targetStatus string) (*BookingDTO, error) {
	target, err := bookingDomain.ParseBookingStatus(targetStatus)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	fromStatus := bk.Status()
	if err := bk.TransitionTo(target); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.BookingStatusChangedEvent{
		BookingID:     bk.ID(),
		BookingNumber: bk.BookingNumber(),
		FromStatus:    string(fromStatus),
		ToStatus:      string(target),
		OccurredAt:    time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingStatusChanged, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// DeleteBooking removes a booking unconditionally, from any status.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}

	evt := events.BookingDeletedEvent{
		BookingID:  bookingID,
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingDeleted, evt)
	return nil
}

// GetBookingByNumber retrieves a booking by its customer-facing booking
// number, for the public lookup endpoint.
func (s *BookingService) GetBookingByNumber(ctx context.Context, number string) (*BookingDTO, error) {
	bk, err := s.bookings.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// GetBooking retrieves a single booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// ListBookings returns a paginated list of bookings, newest first, optionally
// filtered by status (admin).
func (s *BookingService) ListBookings(ctx context.Context, statusFilter string, page, limit int) ([]BookingDTO, int64, error) {
	var (
		bookings []*bookingDomain.Booking
		total    int64
		err      error
	)

	if statusFilter != "" {
		status, parseErr := bookingDomain.ParseBookingStatus(statusFilter)
		if parseErr != nil {
			return nil, 0, domain.NewValidationError(parseErr.Error())
		}
		bookings, total, err = s.bookings.ListByStatus(ctx, status, page, limit)
	} else {
		bookings, total, err = s.bookings.ListAll(ctx, page, limit)
	}
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, total, nil
}

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// GetBookingStats returns aggregate booking statistics (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		return nil, err
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
		ID:              bk.ID(),
		BookingNumber:   bk.BookingNumber(),
		BookingType:     string(bk.Mode()),
		PackageID:       bk.PackageID(),
		ServiceIDs:      bk.ServiceIDs(),
		CustomerName:    bk.CustomerName(),
		CustomerEmail:   bk.CustomerEmail(),
		CustomerPhone:   bk.CustomerPhone(),
		NumberOfGuests:  bk.Guests(),
		CheckInDate:     bk.CheckIn().Format(dateLayout),
		CheckOutDate:    bk.CheckOut().Format(dateLayout),
		Nights:          bk.Nights(),
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
	}
}

func (s *BookingService) publishBookingReceived(ctx context.Context, bk *bookingDomain.Booking) {
	evt := events.BookingReceivedEvent{
		BookingID:       bk.ID(),
		BookingNumber:   bk.BookingNumber(),
		Mode:            string(bk.Mode()),
		PackageID:       bk.PackageID(),
		ServiceIDs:      bk.ServiceIDs(),
		CustomerName:    bk.CustomerName(),
		CustomerEmail:   bk.CustomerEmail(),
		CustomerPhone:   bk.CustomerPhone(),
		Guests:          bk.Guests(),
		CheckIn:         bk.CheckIn(),
		CheckOut:        bk.CheckOut(),
		TotalPriceCents: bk.TotalPriceCents(),
		Currency:        bk.Currency(),
		SpecialRequests: bk.SpecialRequests(),
		OccurredAt:      time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingReceived, evt)
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("booking-backend", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
