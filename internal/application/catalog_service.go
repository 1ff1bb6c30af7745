package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sthemsandsaves/booking-backend/internal/domain"
	"github.com/sthemsandsaves/booking-backend/internal/domain/catalog"
)

// ServiceDTO is the response representation of a catalog service.
type ServiceDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PackageDTO is the response representation of a catalog package.
type PackageDTO struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	DurationDays int         `json:"duration_days"`
	PriceCents   int64       `json:"price_cents"`
	Inclusions   []string    `json:"inclusions"`
	ServiceIDs   []uuid.UUID `json:"service_ids,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// RoomDTO is the response representation of a guest house room.
type RoomDTO struct {
	ID                 uuid.UUID `json:"id"`
	RoomNumber         string    `json:"room_number"`
	RoomType           string    `json:"room_type"`
	Capacity           int       `json:"capacity"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	IsAvailable        bool      `json:"is_available"`
	Amenities          []string  `json:"amenities"`
	ImageURL           string    `json:"image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpsertServiceRequest holds data for creating or updating a service.
type UpsertServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"image_url"`
	IsActive    *bool  `json:"is_active"`
}

// UpsertPackageRequest holds data for creating or updating a package.
type UpsertPackageRequest struct {
	Name         string      `json:"name" binding:"required"`
	Description  string      `json:"description"`
	DurationDays int         `json:"duration_days" binding:"required"`
	PriceCents   int64       `json:"price_cents"`
	Inclusions   []string    `json:"inclusions"`
	ServiceIDs   []uuid.UUID `json:"service_ids"`
	ImageURL     string      `json:"image_url"`
	IsActive     *bool       `json:"is_active"`
}

// UpsertRoomRequest holds data for creating or updating a room.
type UpsertRoomRequest struct {
	RoomNumber         string   `json:"room_number" binding:"required"`
	RoomType           string   `json:"room_type"`
	Capacity           int      `json:"capacity" binding:"required"`
	PricePerNightCents int64    `json:"price_per_night_cents"`
	Amenities          []string `json:"amenities"`
	ImageURL           string   `json:"image_url"`
	IsAvailable        *bool    `json:"is_available"`
}

// CatalogService is the application service for catalog management.
type CatalogService struct {
	services catalog.ServiceRepository
	packages catalog.PackageRepository
	rooms    catalog.RoomRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	services catalog.ServiceRepository,
	packages catalog.PackageRepository,
	rooms catalog.RoomRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		services: services,
		packages: packages,
		rooms:    rooms,
		logger:   logger,
	}
}

// --- Services ---

// ListActiveServices returns the services shown on the public site.
func (s *CatalogService) ListActiveServices(ctx context.Context) ([]ServiceDTO, error) {
	services, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toServiceDTOs(services), nil
}

// ListAllServices returns every service, including inactive ones (admin).
func (s *CatalogService) ListAllServices(ctx context.Context) ([]ServiceDTO, error) {
	services, err := s.services.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toServiceDTOs(services), nil
}

// CreateService adds a new service to the catalog (admin).
func (s *CatalogService) CreateService(ctx context.Context, req UpsertServiceRequest) (*ServiceDTO, error) {
	category, err := catalog.ParseServiceCategory(req.Category)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	svc, err := catalog.NewService(req.Name, req.Description, req.PriceCents, category, req.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := s.services.Save(ctx, svc); err != nil {
		return nil, err
	}

	dto := toServiceDTO(svc)
	return &dto, nil
}

// UpdateService edits an existing service (admin). Edits never recompute the
// totals of existing bookings.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, req UpsertServiceRequest) (*ServiceDTO, error) {
	category, err := catalog.ParseServiceCategory(req.Category)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	active := svc.IsActive()
	if req.IsActive != nil {
		active = *req.IsActive
	}

	if err := svc.Update(req.Name, req.Description, req.PriceCents, category, req.ImageURL, active); err != nil {
		return nil, err
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}

	dto := toServiceDTO(svc)
	return &dto, nil
}

// DeleteService removes a service from the catalog (admin).
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	return s.services.Delete(ctx, id)
}

// --- Packages ---

// ListActivePackages returns the packages shown on the public site.
func (s *CatalogService) ListActivePackages(ctx context.Context) ([]PackageDTO, error) {
	packages, err := s.packages.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return toPackageDTOs(packages), nil
}

// ListAllPackages returns every package, including inactive ones (admin).
func (s *CatalogService) ListAllPackages(ctx context.Context) ([]PackageDTO, error) {
	packages, err := s.packages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toPackageDTOs(packages), nil
}

// CreatePackage adds a new package to the catalog (admin).
func (s *CatalogService) CreatePackage(ctx context.Context, req UpsertPackageRequest) (*PackageDTO, error) {
	pkg, err := catalog.NewPackage(
		req.Name,
		req.Description,
		req.DurationDays,
		req.PriceCents,
		req.Inclusions,
		req.ServiceIDs,
		req.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.packages.Save(ctx, pkg); err != nil {
		return nil, err
	}

	dto := toPackageDTO(pkg)
	return &dto, nil
}

// UpdatePackage edits an existing package (admin).
func (s *CatalogService) UpdatePackage(ctx context.Context, id uuid.UUID, req UpsertPackageRequest) (*PackageDTO, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	active := pkg.IsActive()
	if req.IsActive != nil {
		active = *req.IsActive
	}

	if err := pkg.Update(
		req.Name,
		req.Description,
		req.DurationDays,
		req.PriceCents,
		req.Inclusions,
		req.ServiceIDs,
		req.ImageURL,
		active,
	); err != nil {
		return nil, err
	}

	if err := s.packages.Update(ctx, pkg); err != nil {
		return nil, err
	}

	dto := toPackageDTO(pkg)
	return &dto, nil
}

// DeletePackage removes a package from the catalog (admin).
func (s *CatalogService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	return s.packages.Delete(ctx, id)
}

// --- Rooms ---

// ListAvailableRooms returns the rooms shown on the public site.
func (s *CatalogService) ListAvailableRooms(ctx context.Context) ([]RoomDTO, error) {
	rooms, err := s.rooms.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toRoomDTOs(rooms), nil
}

// ListAllRooms returns every room, including unavailable ones (admin).
func (s *CatalogService) ListAllRooms(ctx context.Context) ([]RoomDTO, error) {
	rooms, err := s.rooms.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toRoomDTOs(rooms), nil
}

// CreateRoom adds a new guest house room (admin).
func (s *CatalogService) CreateRoom(ctx context.Context, req UpsertRoomRequest) (*RoomDTO, error) {
	room, err := catalog.NewRoom(
		req.RoomNumber,
		req.RoomType,
		req.Capacity,
		req.PricePerNightCents,
		req.Amenities,
		req.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}

	dto := toRoomDTO(room)
	return &dto, nil
}

// UpdateRoom edits an existing room (admin).
func (s *CatalogService) UpdateRoom(ctx context.Context, id uuid.UUID, req UpsertRoomRequest) (*RoomDTO, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	available := room.IsAvailable()
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	if err := room.Update(
		req.RoomNumber,
		req.RoomType,
		req.Capacity,
		req.PricePerNightCents,
		available,
		req.Amenities,
		req.ImageURL,
	); err != nil {
		return nil, err
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}

	dto := toRoomDTO(room)
	return &dto, nil
}

// DeleteRoom removes a room (admin).
func (s *CatalogService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.rooms.Delete(ctx, id)
}

// --- Converters ---

func toServiceDTO(svc *catalog.Service) ServiceDTO {
	return ServiceDTO{
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

func toServiceDTOs(services []*catalog.Service) []ServiceDTO {
	dtos := make([]ServiceDTO, len(services))
	for i, svc := range services {
		dtos[i] = toServiceDTO(svc)
	}
	return dtos
}

func toPackageDTO(pkg *catalog.Package) PackageDTO {
	return PackageDTO{
		ID:           pkg.ID(),
		Name:         pkg.Name(),
		Description:  pkg.Description(),
		DurationDays: pkg.DurationDays(),
		PriceCents:   pkg.PriceCents(),
		Inclusions:   pkg.Inclusions(),
		ServiceIDs:   pkg.ServiceIDs(),
		ImageURL:     pkg.ImageURL(),
		IsActive:     pkg.IsActive(),
		CreatedAt:    pkg.CreatedAt(),
		UpdatedAt:    pkg.UpdatedAt(),
	}
}

func toPackageDTOs(packages []*catalog.Package) []PackageDTO {
	dtos := make([]PackageDTO, len(packages))
	for i, pkg := range packages {
		dtos[i] = toPackageDTO(pkg)
	}
	return dtos
}

func toRoomDTO(room *catalog.Room) RoomDTO {
	return RoomDTO{
		ID:                 room.ID(),
		RoomNumber:         room.RoomNumber(),
		RoomType:           room.RoomType(),
		Capacity:           room.Capacity(),
		PricePerNightCents: room.PricePerNightCents(),
		IsAvailable:        room.IsAvailable(),
		Amenities:          room.Amenities(),
		ImageURL:           room.ImageURL(),
		CreatedAt:          room.CreatedAt(),
		UpdatedAt:          room.UpdatedAt(),
	}
}

func toRoomDTOs(rooms []*catalog.Room) []RoomDTO {
	dtos := make([]RoomDTO, len(rooms))
	for i, room := range rooms {
		dtos[i] = toRoomDTO(room)
	}
	return dtos
}
