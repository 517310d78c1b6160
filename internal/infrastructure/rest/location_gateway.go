package rest

import (
	"context"
	"strconv"

	"sportmart.client/internal/domain/entities"
)

// LocationGateway implements the hierarchical location lookups
type LocationGateway struct {
	client *Client
}

// NewLocationGateway creates a new location gateway
func NewLocationGateway(client *Client) *LocationGateway {
	return &LocationGateway{client: client}
}

// Provinces lists all provinces
func (g *LocationGateway) Provinces(ctx context.Context) ([]entities.Province, error) {
	var provinces []entities.Province
	if err := g.client.get(ctx, "/api/v1/locations/provinces", nil, &provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}

// Districts lists the districts of one province
func (g *LocationGateway) Districts(ctx context.Context, provinceID int) ([]entities.District, error) {
	var districts []entities.District
	path := "/api/v1/locations/provinces/" + strconv.Itoa(provinceID) + "/districts"
	if err := g.client.get(ctx, path, nil, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

// Wards lists the wards of one district
func (g *LocationGateway) Wards(ctx context.Context, districtID int) ([]entities.Ward, error) {
	var wards []entities.Ward
	path := "/api/v1/locations/districts/" + strconv.Itoa(districtID) + "/wards"
	if err := g.client.get(ctx, path, nil, &wards); err != nil {
		return nil, err
	}
	return wards, nil
}
