package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/internal/domain/gateways"
	"sportmart.client/pkg/utils"
)

// RegistrationAdmin backs the admin review dashboard: list/search pending
// applications and approve or reject them.
type RegistrationAdmin struct {
	gw gateways.RegistrationGateway
}

// NewRegistrationAdmin creates a new admin review usecase
func NewRegistrationAdmin(gw gateways.RegistrationGateway) *RegistrationAdmin {
	return &RegistrationAdmin{gw: gw}
}

// ListPending returns one page of applications awaiting review.
func (a *RegistrationAdmin) ListPending(ctx context.Context, search string, page, limit int) ([]*entities.SellerRegistration, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	return a.gw.ListPending(ctx, strings.TrimSpace(search), params)
}

// Detail returns one application.
func (a *RegistrationAdmin) Detail(ctx context.Context, id uuid.UUID) (*entities.SellerRegistration, error) {
	return a.gw.Detail(ctx, id)
}

// Approve approves an application; the backend creates the STORE address as
// part of approval.
func (a *RegistrationAdmin) Approve(ctx context.Context, id uuid.UUID) error {
	return a.gw.Approve(ctx, id)
}

// Reject rejects an application; a reason is required so the applicant can
// fix and resubmit.
func (a *RegistrationAdmin) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domainerrors.BadRequest("vui lòng nhập lý do từ chối")
	}
	return a.gw.Reject(ctx, id, strings.TrimSpace(reason))
}
