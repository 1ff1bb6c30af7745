package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

// Room is a guest house room offered alongside the tour catalog.
type Room struct {
	id                 uuid.UUID
	roomNumber         string
	roomType           string
	capacity           int
	pricePerNightCents int64
	available          bool
	amenities          []string
	imageURL           string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewRoom creates a new available room with validated fields.
func NewRoom(roomNumber, roomType string, capacity int, pricePerNightCents int64, amenities []string, imageURL string) (*Room, error) {
	if roomNumber == "" {
		return nil, domain.NewValidationError("room number is required")
	}
	if capacity < 1 {
		return nil, domain.NewValidationError("room capacity must be at least 1")
	}
	if pricePerNightCents < 0 {
		return nil, domain.NewValidationError("room price cannot be negative")
	}

	now := time.Now().UTC()
	return &Room{
		id:                 uuid.New(),
		roomNumber:         roomNumber,
		roomType:           roomType,
		capacity:           capacity,
		pricePerNightCents: pricePerNightCents,
		available:          true,
		amenities:          amenities,
		imageURL:           imageURL,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructRoom rebuilds a Room from persistence data (no validation).
func ReconstructRoom(
	id uuid.UUID,
	roomNumber, roomType string,
	capacity int,
	pricePerNightCents int64,
	available bool,
	amenities []string,
	imageURL string,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                 id,
		roomNumber:         roomNumber,
		roomType:           roomType,
		capacity:           capacity,
		pricePerNightCents: pricePerNightCents,
		available:          available,
		amenities:          amenities,
		imageURL:           imageURL,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// --- Getters ---

func (r *Room) ID() uuid.UUID             { return r.id }
func (r *Room) RoomNumber() string        { return r.roomNumber }
func (r *Room) RoomType() string          { return r.roomType }
func (r *Room) Capacity() int             { return r.capacity }
func (r *Room) PricePerNightCents() int64 { return r.pricePerNightCents }
func (r *Room) IsAvailable() bool         { return r.available }
func (r *Room) Amenities() []string       { return r.amenities }
func (r *Room) ImageURL() string          { return r.imageURL }
func (r *Room) CreatedAt() time.Time      { return r.createdAt }
func (r *Room) UpdatedAt() time.Time      { return r.updatedAt }

// --- Behavior ---

// Update applies edits to the room.
func (r *Room) Update(roomNumber, roomType string, capacity int, pricePerNightCents int64, available bool, amenities []string, imageURL string) error {
	if roomNumber == "" {
		return domain.NewValidationError("room number is required")
	}
	if capacity < 1 {
		return domain.NewValidationError("room capacity must be at least 1")
	}
	if pricePerNightCents < 0 {
		return domain.NewValidationError("room price cannot be negative")
	}

	r.roomNumber = roomNumber
	r.roomType = roomType
	r.capacity = capacity
	r.pricePerNightCents = pricePerNightCents
	r.available = available
	r.amenities = amenities
	r.imageURL = imageURL
	r.updatedAt = time.Now().UTC()
	return nil
}
