package rest

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"sportmart.client/internal/domain/entities"
)

// AddressGateway implements the remote address operations
type AddressGateway struct {
	client *Client
}

// NewAddressGateway creates a new address gateway
func NewAddressGateway(client *Client) *AddressGateway {
	return &AddressGateway{client: client}
}

// List retrieves the user's addresses, optionally excluding types
// (the buyer-facing UI hides STORE addresses this way).
func (g *AddressGateway) List(ctx context.Context, exclude []entities.AddressType) ([]*entities.AddressRecord, error) {
	query := url.Values{}
	if len(exclude) > 0 {
		parts := make([]string, 0, len(exclude))
		for _, t := range exclude {
			parts = append(parts, string(t))
		}
		query.Set("excludeTypes", strings.Join(parts, ","))
	}

	var records []*entities.AddressRecord
	if err := g.client.get(ctx, "/api/v1/addresses", query, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get retrieves one address by id
func (g *AddressGateway) Get(ctx context.Context, id uuid.UUID) (*entities.AddressRecord, error) {
	var record entities.AddressRecord
	if err := g.client.get(ctx, "/api/v1/addresses/"+id.String(), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create persists a new address
func (g *AddressGateway) Create(ctx context.Context, in *entities.AddressPayload) (*entities.AddressRecord, error) {
	var record entities.AddressRecord
	if err := g.client.post(ctx, "/api/v1/addresses", in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Update modifies an existing address
func (g *AddressGateway) Update(ctx context.Context, id uuid.UUID, in *entities.AddressPayload) (*entities.AddressRecord, error) {
	var record entities.AddressRecord
	if err := g.client.put(ctx, "/api/v1/addresses/"+id.String(), in, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes an address
func (g *AddressGateway) Delete(ctx context.Context, id uuid.UUID) error {
	return g.client.delete(ctx, "/api/v1/addresses/"+id.String())
}

// SetPrimary marks the address as the default HOME address
func (g *AddressGateway) SetPrimary(ctx context.Context, id uuid.UUID) (*entities.AddressRecord, error) {
	var record entities.AddressRecord
	if err := g.client.patch(ctx, "/api/v1/addresses/"+id.String()+"/primary", nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
