package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

// ServiceCategory classifies a purchasable service. Lodging is the only
// category priced per night.
type ServiceCategory string

const (
	CategoryAttraction ServiceCategory = "attraction"
	CategoryTransport  ServiceCategory = "transport"
	CategoryLodging    ServiceCategory = "lodging"
)

// IsValid returns true if the category is recognized.
func (c ServiceCategory) IsValid() bool {
	switch c {
	case CategoryAttraction, CategoryTransport, CategoryLodging:
		return true
	}
	return false
}

// ParseServiceCategory converts a string to a ServiceCategory.
func ParseServiceCategory(s string) (ServiceCategory, error) {
	c := ServiceCategory(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid service category: %s", s)
	}
	return c, nil
}

// Service is a purchasable line item in the catalog.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	priceCents  int64
	category    ServiceCategory
	imageURL    string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewService creates a new active service with validated fields.
func NewService(name, description string, priceCents int64, category ServiceCategory, imageURL string) (*Service, error) {
	if name == "" {
		return nil, domain.NewValidationError("service name is required")
	}
	if priceCents < 0 {
		return nil, domain.NewValidationError("service price cannot be negative")
	}
	if !category.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid service category: %s", category))
	}

	now := time.Now().UTC()
	return &Service{
		id:          uuid.New(),
		name:        name,
		description: description,
		priceCents:  priceCents,
		category:    category,
		imageURL:    imageURL,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructService rebuilds a Service from persistence data (no validation).
func ReconstructService(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	category ServiceCategory,
	imageURL string,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		priceCents:  priceCents,
		category:    category,
		imageURL:    imageURL,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// --- Getters ---

func (s *Service) ID() uuid.UUID             { return s.id }
func (s *Service) Name() string              { return s.name }
func (s *Service) Description() string       { return s.description }
func (s *Service) PriceCents() int64         { return s.priceCents }
func (s *Service) Category() ServiceCategory { return s.category }
func (s *Service) ImageURL() string          { return s.imageURL }
func (s *Service) IsActive() bool            { return s.active }
func (s *Service) CreatedAt() time.Time      { return s.createdAt }
func (s *Service) UpdatedAt() time.Time      { return s.updatedAt }

// IsLodging returns true if the service is priced per night.
func (s *Service) IsLodging() bool { return s.category == CategoryLodging }

// --- Behavior ---

// Update applies edits to the service. Price and category are validated.
func (s *Service) Update(name, description string, priceCents int64, category ServiceCategory, imageURL string, active bool) error {
	if name == "" {
		return domain.NewValidationError("service name is required")
	}
	if priceCents < 0 {
		return domain.NewValidationError("service price cannot be negative")
	}
	if !category.IsValid() {
		return domain.NewValidationError(fmt.Sprintf("invalid service category: %s", category))
	}

	s.name = name
	s.description = description
	s.priceCents = priceCents
	s.category = category
	s.imageURL = imageURL
	s.active = active
	s.updatedAt = time.Now().UTC()
	return nil
}
