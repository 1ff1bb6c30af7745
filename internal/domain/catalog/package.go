package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
)

// Package is a bundled multi-day offering priced per person.
type Package struct {
	id           uuid.UUID
	name         string
	description  string
	durationDays int
	priceCents   int64
	inclusions   []string
	serviceIDs   []uuid.UUID
	imageURL     string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPackage creates a new active package with validated fields. Blank
// inclusion entries are dropped after trimming.
func NewPackage(
	name, description string,
	durationDays int,
	priceCents int64,
	inclusions []string,
	serviceIDs []uuid.UUID,
	imageURL string,
) (*Package, error) {
	if name == "" {
		return nil, domain.NewValidationError("package name is required")
	}
	if durationDays < 1 {
		return nil, domain.NewValidationError("package duration must be at least 1 day")
	}
	if priceCents < 0 {
		return nil, domain.NewValidationError("package price cannot be negative")
	}

	now := time.Now().UTC()
	return &Package{
		id:           uuid.New(),
		name:         name,
		description:  description,
		durationDays: durationDays,
		priceCents:   priceCents,
		inclusions:   trimInclusions(inclusions),
		serviceIDs:   serviceIDs,
		imageURL:     imageURL,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructPackage rebuilds a Package from persistence data (no validation).
func ReconstructPackage(
	id uuid.UUID,
	name, description string,
	durationDays int,
	priceCents int64,
	inclusions []string,
	serviceIDs []uuid.UUID,
	imageURL string,
	active bool,
	createdAt, updatedAt time.Time,
) *Package {
	return &Package{
		id:           id,
		name:         name,
		description:  description,
		durationDays: durationDays,
		priceCents:   priceCents,
		inclusions:   inclusions,
		serviceIDs:   serviceIDs,
		imageURL:     imageURL,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// --- Getters ---

func (p *Package) ID() uuid.UUID           { return p.id }
func (p *Package) Name() string            { return p.name }
func (p *Package) Description() string     { return p.description }
func (p *Package) DurationDays() int       { return p.durationDays }
func (p *Package) PriceCents() int64       { return p.priceCents }
func (p *Package) Inclusions() []string    { return p.inclusions }
func (p *Package) ServiceIDs() []uuid.UUID { return p.serviceIDs }
func (p *Package) ImageURL() string        { return p.imageURL }
func (p *Package) IsActive() bool          { return p.active }
func (p *Package) CreatedAt() time.Time    { return p.createdAt }
func (p *Package) UpdatedAt() time.Time    { return p.updatedAt }

// --- Behavior ---

// Update applies edits to the package.
func (p *Package) Update(
	name, description string,
	durationDays int,
	priceCents int64,
	inclusions []string,
	serviceIDs []uuid.UUID,
	imageURL string,
	active bool,
) error {
	if name == "" {
		return domain.NewValidationError("package name is required")
	}
	if durationDays < 1 {
		return domain.NewValidationError("package duration must be at least 1 day")
	}
	if priceCents < 0 {
		return domain.NewValidationError("package price cannot be negative")
	}

	p.name = name
	p.description = description
	p.durationDays = durationDays
	p.priceCents = priceCents
	p.inclusions = trimInclusions(inclusions)
	p.serviceIDs = serviceIDs
	p.imageURL = imageURL
	p.active = active
	p.updatedAt = time.Now().UTC()
	return nil
}

// trimInclusions trims each entry and drops blanks. Saved inclusions are
// never blank.
func trimInclusions(inclusions []string) []string {
	result := make([]string, 0, len(inclusions))
	for _, inc := range inclusions {
		trimmed := strings.TrimSpace(inc)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
