package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	"github.com/sthemsandsaves/booking-backend/internal/domain/catalog"
)

// RoomModel is the GORM model for the guest_house_rooms table.
type RoomModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RoomNumber         string          `gorm:"uniqueIndex;not null;size:20"`
	RoomType           string          `gorm:"size:100"`
	Capacity           int             `gorm:"not null"`
	PricePerNightCents int64           `gorm:"not null"`
	IsAvailable        bool            `gorm:"not null;default:true;index"`
	Amenities          json.RawMessage `gorm:"type:jsonb"`
	ImageURL           string          `gorm:"size:500"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "guest_house_rooms"
}

// GormRoomRepository is the GORM-based implementation of RoomRepository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID retrieves a room by its unique identifier.
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", id.String())
		}
		return nil, domain.NewUnavailableError("failed to find room by ID", err)
	}
	return toDomainRoom(&model)
}

// ListAvailable retrieves available rooms ordered by room number.
func (r *GormRoomRepository) ListAvailable(ctx context.Context) ([]*catalog.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("room_number ASC").
		Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list available rooms", err)
	}
	return toDomainRooms(models)
}

// ListAll retrieves every room (admin view).
func (r *GormRoomRepository) ListAll(ctx context.Context) ([]*catalog.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).Order("room_number ASC").Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list rooms", err)
	}
	return toDomainRooms(models)
}

// Save persists a new room.
func (r *GormRoomRepository) Save(ctx context.Context, room *catalog.Room) error {
	model, err := toRoomModel(room)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewUnavailableError("failed to save room", err)
	}
	return nil
}

// Update persists changes to an existing room.
func (r *GormRoomRepository) Update(ctx context.Context, room *catalog.Room) error {
	model, err := toRoomModel(room)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"room_number":           model.RoomNumber,
			"room_type":             model.RoomType,
			"capacity":              model.Capacity,
			"price_per_night_cents": model.PricePerNightCents,
			"is_available":          model.IsAvailable,
			"amenities":             model.Amenities,
			"image_url":             model.ImageURL,
			"updated_at":            model.UpdatedAt,
		})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to update room", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Room", model.ID.String())
	}
	return nil
}

// Delete removes a room. Deleting an absent room yields a NotFoundError.
func (r *GormRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&RoomModel{})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to delete room", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Room", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toRoomModel(room *catalog.Room) (*RoomModel, error) {
	var amenitiesJSON json.RawMessage
	if room.Amenities() != nil {
		data, err := json.Marshal(room.Amenities())
		if err != nil {
			return nil, domain.NewUnavailableError("failed to marshal amenities", err)
		}
		amenitiesJSON = data
	}

	return &RoomModel{
		ID:                 room.ID(),
		RoomNumber:         room.RoomNumber(),
		RoomType:           room.RoomType(),
		Capacity:           room.Capacity(),
		PricePerNightCents: room.PricePerNightCents(),
		IsAvailable:        room.IsAvailable(),
		Amenities:          amenitiesJSON,
		ImageURL:           room.ImageURL(),
		CreatedAt:          room.CreatedAt(),
		UpdatedAt:          room.UpdatedAt(),
	}, nil
}

func toDomainRoom(m *RoomModel) (*catalog.Room, error) {
	var amenities []string
	if len(m.Amenities) > 0 {
		if err := json.Unmarshal(m.Amenities, &amenities); err != nil {
			return nil, domain.NewUnavailableError("failed to unmarshal amenities", err)
		}
	}

	return catalog.ReconstructRoom(
		m.ID,
		m.RoomNumber,
		m.RoomType,
		m.Capacity,
		m.PricePerNightCents,
		m.IsAvailable,
		amenities,
		m.ImageURL,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainRooms(models []RoomModel) ([]*catalog.Room, error) {
	rooms := make([]*catalog.Room, len(models))
	for i, m := range models {
		room, err := toDomainRoom(&m)
		if err != nil {
			return nil, err
		}
		rooms[i] = room
	}
	return rooms, nil
}
