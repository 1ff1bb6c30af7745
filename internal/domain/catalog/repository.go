package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ServiceRepository defines persistence operations for services.
type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Service, error)
	ListActive(ctx context.Context) ([]*Service, error)
	ListAll(ctx context.Context) ([]*Service, error)
	Save(ctx context.Context, svc *Service) error
	Update(ctx context.Context, svc *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PackageRepository defines persistence operations for packages.
type PackageRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Package, error)
	ListActive(ctx context.Context) ([]*Package, error)
	ListAll(ctx context.Context) ([]*Package, error)
	Save(ctx context.Context, pkg *Package) error
	Update(ctx context.Context, pkg *Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoomRepository defines persistence operations for guest house rooms.
type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)
	ListAvailable(ctx context.Context) ([]*Room, error)
	ListAll(ctx context.Context) ([]*Room, error)
	Save(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}
