package rest

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/utils"
)

// RegistrationGateway implements the seller registration operations
type RegistrationGateway struct {
	client *Client
}

// NewRegistrationGateway creates a new registration gateway
func NewRegistrationGateway(client *Client) *RegistrationGateway {
	return &RegistrationGateway{client: client}
}

// Submit creates a new pending application
func (g *RegistrationGateway) Submit(ctx context.Context, in *entities.SubmitRegistrationInput) (*entities.SellerRegistration, error) {
	var reg entities.SellerRegistration
	if err := g.client.post(ctx, "/api/v1/seller/registration", in, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// UpdateRejected resubmits a previously rejected application
func (g *RegistrationGateway) UpdateRejected(ctx context.Context, in *entities.SubmitRegistrationInput) (*entities.SellerRegistration, error) {
	var reg entities.SellerRegistration
	if err := g.client.put(ctx, "/api/v1/seller/registration", in, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// CancelRejected withdraws a rejected application
func (g *RegistrationGateway) CancelRejected(ctx context.Context) error {
	return g.client.delete(ctx, "/api/v1/seller/registration")
}

// Status returns the caller's current application, ErrNotFound when none
func (g *RegistrationGateway) Status(ctx context.Context) (*entities.SellerRegistration, error) {
	var reg entities.SellerRegistration
	if err := g.client.get(ctx, "/api/v1/seller/registration", nil, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

// CheckShopName reports whether the shop name is free
func (g *RegistrationGateway) CheckShopName(ctx context.Context, name string, excludeSelf bool) (bool, error) {
	query := url.Values{"name": {name}}
	if excludeSelf {
		query.Set("excludeSelf", "true")
	}
	var resp availabilityResponse
	if err := g.client.get(ctx, "/api/v1/seller/registration/check-shop-name", query, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

// CheckNationalID reports whether the national id is unregistered
func (g *RegistrationGateway) CheckNationalID(ctx context.Context, idNumber string, excludeSelf bool) (bool, error) {
	query := url.Values{"idNumber": {idNumber}}
	if excludeSelf {
		query.Set("excludeSelf", "true")
	}
	var resp availabilityResponse
	if err := g.client.get(ctx, "/api/v1/seller/registration/check-national-id", query, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

type registrationPage struct {
	Items []*entities.SellerRegistration `json:"items"`
	Meta  utils.PaginationMeta           `json:"meta"`
}

// ListPending lists applications awaiting review (admin)
func (g *RegistrationGateway) ListPending(ctx context.Context, search string, p utils.PaginationParams) ([]*entities.SellerRegistration, utils.PaginationMeta, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	query.Set("page", strconv.Itoa(p.Page))
	query.Set("limit", strconv.Itoa(p.Limit))

	var page registrationPage
	if err := g.client.get(ctx, "/api/v1/admin/registrations", query, &page); err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return page.Items, page.Meta, nil
}

// Detail returns one application (admin)
func (g *RegistrationGateway) Detail(ctx context.Context, id uuid.UUID) (*entities.SellerRegistration, error) {
	var reg entities.SellerRegistration
	if err := g.client.get(ctx, "/api/v1/admin/registrations/"+id.String(), nil, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Approve approves an application (admin)
func (g *RegistrationGateway) Approve(ctx context.Context, id uuid.UUID) error {
	return g.client.post(ctx, "/api/v1/admin/registrations/"+id.String()+"/approve", nil, nil)
}

// Reject rejects an application with a reason (admin)
func (g *RegistrationGateway) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	body := map[string]string{"reason": reason}
	return g.client.post(ctx, "/api/v1/admin/registrations/"+id.String()+"/reject", body, nil)
}
