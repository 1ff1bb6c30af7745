package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	"github.com/sthemsandsaves/booking-backend/internal/domain/catalog"
)

// ServiceModel is the GORM model for the services table.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null;size:200"`
	Description string    `gorm:"size:1000"`
	PriceCents  int64     `gorm:"not null"`
	Category    string    `gorm:"not null;size:30;index"`
	ImageURL    string    `gorm:"size:500"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ServiceModel) TableName() string {
	return "services"
}

// GormServiceRepository is the GORM-based implementation of ServiceRepository.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByID retrieves a service by its unique identifier.
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var model ServiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Service", id.String())
		}
		return nil, domain.NewUnavailableError("failed to find service by ID", err)
	}
	return toDomainService(&model)
}

// FindByIDs retrieves services matching the given identifiers. Missing IDs
// are skipped; the caller decides whether a partial result is acceptable.
func (r *GormServiceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*catalog.Service, error) {
	var models []ServiceModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to find services by IDs", err)
	}
	return toDomainServices(models)
}

// ListActive retrieves active services in catalog order (oldest first).
func (r *GormServiceRepository) ListActive(ctx context.Context) ([]*catalog.Service, error) {
	var models []ServiceModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list active services", err)
	}
	return toDomainServices(models)
}

// ListAll retrieves every service, active or not (admin view).
func (r *GormServiceRepository) ListAll(ctx context.Context) ([]*catalog.Service, error) {
	var models []ServiceModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list services", err)
	}
	return toDomainServices(models)
}

// Save persists a new service.
func (r *GormServiceRepository) Save(ctx context.Context, svc *catalog.Service) error {
	if err := r.db.WithContext(ctx).Create(toServiceModel(svc)).Error; err != nil {
		return domain.NewUnavailableError("failed to save service", err)
	}
	return nil
}

// Update persists changes to an existing service.
func (r *GormServiceRepository) Update(ctx context.Context, svc *catalog.Service) error {
	model := toServiceModel(svc)
	result := r.db.WithContext(ctx).
		Model(&ServiceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"price_cents": model.PriceCents,
			"category":    model.Category,
			"image_url":   model.ImageURL,
			"is_active":   model.IsActive,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to update service", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Service", model.ID.String())
	}
	return nil
}

// Delete removes a service. Deleting an absent service yields a NotFoundError.
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ServiceModel{})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to delete service", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Service", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toServiceModel(svc *catalog.Service) *ServiceModel {
	return &ServiceModel{
		ID:          svc.ID(),
		Name:        svc.Name(),
		Description: svc.Description(),
		PriceCents:  svc.PriceCents(),
		Category:    string(svc.Category()),
		ImageURL:    svc.ImageURL(),
		IsActive:    svc.IsActive(),
		CreatedAt:   svc.CreatedAt(),
		UpdatedAt:   svc.UpdatedAt(),
	}
}

func toDomainService(m *ServiceModel) (*catalog.Service, error) {
	category, err := catalog.ParseServiceCategory(m.Category)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructService(
		m.ID,
		m.Name,
		m.Description,
		m.PriceCents,
		category,
		m.ImageURL,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainServices(models []ServiceModel) ([]*catalog.Service, error) {
	services := make([]*catalog.Service, len(models))
	for i, m := range models {
		svc, err := toDomainService(&m)
		if err != nil {
			return nil, err
		}
		services[i] = svc
	}
	return services, nil
}
