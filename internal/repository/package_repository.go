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

// PackageModel is the GORM model for the packages table.
type PackageModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"not null;size:200"`
	Description  string          `gorm:"size:1000"`
	DurationDays int             `gorm:"not null"`
	PriceCents   int64           `gorm:"not null"`
	Inclusions   json.RawMessage `gorm:"type:jsonb"`
	ServiceIDs   json.RawMessage `gorm:"type:jsonb"`
	ImageURL     string          `gorm:"size:500"`
	IsActive     bool            `gorm:"not null;default:true;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PackageModel) TableName() string {
	return "packages"
}

// GormPackageRepository is the GORM-based implementation of PackageRepository.
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GormPackageRepository.
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// FindByID retrieves a package by its unique identifier.
func (r *GormPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	var model PackageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Package", id.String())
		}
		return nil, domain.NewUnavailableError("failed to find package by ID", err)
	}
	return toDomainPackage(&model)
}

// ListActive retrieves active packages in catalog order (oldest first).
func (r *GormPackageRepository) ListActive(ctx context.Context) ([]*catalog.Package, error) {
	var models []PackageModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list active packages", err)
	}
	return toDomainPackages(models)
}

// ListAll retrieves every package, active or not (admin view).
func (r *GormPackageRepository) ListAll(ctx context.Context) ([]*catalog.Package, error) {
	var models []PackageModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, domain.NewUnavailableError("failed to list packages", err)
	}
	return toDomainPackages(models)
}

// Save persists a new package.
func (r *GormPackageRepository) Save(ctx context.Context, pkg *catalog.Package) error {
	model, err := toPackageModel(pkg)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return domain.NewUnavailableError("failed to save package", err)
	}
	return nil
}

// Update persists changes to an existing package.
func (r *GormPackageRepository) Update(ctx context.Context, pkg *catalog.Package) error {
	model, err := toPackageModel(pkg)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&PackageModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"description":   model.Description,
			"duration_days": model.DurationDays,
			"price_cents":   model.PriceCents,
			"inclusions":    model.Inclusions,
			"service_ids":   model.ServiceIDs,
			"image_url":     model.ImageURL,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to update package", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Package", model.ID.String())
	}
	return nil
}

// Delete removes a package. Deleting an absent package yields a NotFoundError.
func (r *GormPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PackageModel{})
	if result.Error != nil {
		return domain.NewUnavailableError("failed to delete package", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Package", id.String())
	}
	return nil
}

// --- Conversion Helpers ---

func toPackageModel(pkg *catalog.Package) (*PackageModel, error) {
	inclusionsJSON, err := json.Marshal(pkg.Inclusions())
	if err != nil {
		return nil, domain.NewUnavailableError("failed to marshal inclusions", err)
	}

	var serviceIDsJSON json.RawMessage
	if pkg.ServiceIDs() != nil {
		data, err := json.Marshal(pkg.ServiceIDs())
		if err != nil {
			return nil, domain.NewUnavailableError("failed to marshal service IDs", err)
		}
		serviceIDsJSON = data
	}

	return &PackageModel{
		ID:           pkg.ID(),
		Name:         pkg.Name(),
		Description:  pkg.Description(),
		DurationDays: pkg.DurationDays(),
		PriceCents:   pkg.PriceCents(),
		Inclusions:   inclusionsJSON,
		ServiceIDs:   serviceIDsJSON,
		ImageURL:     pkg.ImageURL(),
		IsActive:     pkg.IsActive(),
		CreatedAt:    pkg.CreatedAt(),
		UpdatedAt:    pkg.UpdatedAt(),
	}, nil
}

func toDomainPackage(m *PackageModel) (*catalog.Package, error) {
	var inclusions []string
	if len(m.Inclusions) > 0 {
		if err := json.Unmarshal(m.Inclusions, &inclusions); err != nil {
			return nil, domain.NewUnavailableError("failed to unmarshal inclusions", err)
		}
	}

	var serviceIDs []uuid.UUID
	if len(m.ServiceIDs) > 0 {
		if err := json.Unmarshal(m.ServiceIDs, &serviceIDs); err != nil {
			return nil, domain.NewUnavailableError("failed to unmarshal service IDs", err)
		}
	}

	return catalog.ReconstructPackage(
		m.ID,
		m.Name,
		m.Description,
		m.DurationDays,
		m.PriceCents,
		inclusions,
		serviceIDs,
		m.ImageURL,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainPackages(models []PackageModel) ([]*catalog.Package, error) {
	packages := make([]*catalog.Package, len(models))
	for i, m := range models {
		pkg, err := toDomainPackage(&m)
		if err != nil {
			return nil, err
		}
		packages[i] = pkg
	}
	return packages, nil
}
