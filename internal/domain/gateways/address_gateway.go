package gateways

import (
	"context"

	"github.com/google/uuid"
	"sportmart.client/internal/domain/entities"
)

// AddressGateway defines the remote address operations
type AddressGateway interface {
	List(ctx context.Context, exclude []entities.AddressType) ([]*entities.AddressRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*entities.AddressRecord, error)
	Create(ctx context.Context, in *entities.AddressPayload) (*entities.AddressRecord, error)
	Update(ctx context.Context, id uuid.UUID, in *entities.AddressPayload) (*entities.AddressRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPrimary(ctx context.Context, id uuid.UUID) (*entities.AddressRecord, error)
}

// LocationGateway defines the read-only location master data lookups
type LocationGateway interface {
	Provinces(ctx context.Context) ([]entities.Province, error)
	Districts(ctx context.Context, provinceID int) ([]entities.District, error)
	Wards(ctx context.Context, districtID int) ([]entities.Ward, error)
}
