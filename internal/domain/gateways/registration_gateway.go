package gateways

import (
	"context"

	"github.com/google/uuid"
	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/utils"
)

// RegistrationGateway defines the seller registration operations.
// excludeSelf parameterizes the availability checks so a rejected applicant
// re-submitting unchanged values does not conflict with their own record.
type RegistrationGateway interface {
	Submit(ctx context.Context, in *entities.SubmitRegistrationInput) (*entities.SellerRegistration, error)
	UpdateRejected(ctx context.Context, in *entities.SubmitRegistrationInput) (*entities.SellerRegistration, error)
	CancelRejected(ctx context.Context) error
	Status(ctx context.Context) (*entities.SellerRegistration, error)
	CheckShopName(ctx context.Context, name string, excludeSelf bool) (bool, error)
	CheckNationalID(ctx context.Context, idNumber string, excludeSelf bool) (bool, error)

	// Admin review surface.
	ListPending(ctx context.Context, search string, p utils.PaginationParams) ([]*entities.SellerRegistration, utils.PaginationMeta, error)
	Detail(ctx context.Context, id uuid.UUID) (*entities.SellerRegistration, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID, reason string) error
}
