package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/utils"
)

// Mock AddressGateway
type MockAddressGateway struct {
	mock.Mock
}

func (m *MockAddressGateway) List(ctx context.Context, exclude []entities.AddressType) ([]*entities.AddressRecord, error) {
	args := m.Called(ctx, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AddressRecord), args.Error(1)
}

func (m *MockAddressGateway) Get(ctx context.Context, id uuid.UUID) (*entities.AddressRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AddressRecord), args.Error(1)
}

func (m *MockAddressGateway) Create(ctx context.Context, in *entities.AddressPayload) (*entities.AddressRecord, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AddressRecord), args.Error(1)
}

func (m *MockAddressGateway) Update(ctx context.Context, id uuid.UUID, in *entities.AddressPayload) (*entities.AddressRecord, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AddressRecord), args.Error(1)
}

func (m *MockAddressGateway) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAddressGateway) SetPrimary(ctx context.Context, id uuid.UUID) (*entities.AddressRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AddressRecord), args.Error(1)
}

// Mock LocationGateway
type MockLocationGateway struct {
	mock.Mock
}

func (m *MockLocationGateway) Provinces(ctx context.Context) ([]entities.Province, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Province), args.Error(1)
}

func (m *MockLocationGateway) Districts(ctx context.Context, provinceID int) ([]entities.District, error) {
	args := m.Called(ctx, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.District), args.Error(1)
}

func (m *MockLocationGateway) Wards(ctx context.Context, districtID int) ([]entities.Ward, error) {
	args := m.Called(ctx, districtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Ward), args.Error(1)
}

// Mock RegistrationGateway
type MockRegistrationGateway struct {
	mock.Mock
}

func (m *MockRegistrationGateway) Submit(ctx context.Context, in *entities.SubmitRegistrationInput) (*entities.SellerRegistration, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerRegistration), args.Error(1)
}

func (m *MockRegistrationGateway) UpdateRejected(ctx context.Context, in *entities.SubmitRegistrationInput) (*entities.SellerRegistration, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerRegistration), args.Error(1)
}

func (m *MockRegistrationGateway) CancelRejected(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationGateway) Status(ctx context.Context) (*entities.SellerRegistration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerRegistration), args.Error(1)
}

func (m *MockRegistrationGateway) CheckShopName(ctx context.Context, name string, excludeSelf bool) (bool, error) {
	args := m.Called(ctx, name, excludeSelf)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationGateway) CheckNationalID(ctx context.Context, idNumber string, excludeSelf bool) (bool, error) {
	args := m.Called(ctx, idNumber, excludeSelf)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationGateway) ListPending(ctx context.Context, search string, p utils.PaginationParams) ([]*entities.SellerRegistration, utils.PaginationMeta, error) {
	args := m.Called(ctx, search, p)
	if args.Get(0) == nil {
		return nil, utils.PaginationMeta{}, args.Error(2)
	}
	return args.Get(0).([]*entities.SellerRegistration), args.Get(1).(utils.PaginationMeta), args.Error(2)
}

func (m *MockRegistrationGateway) Detail(ctx context.Context, id uuid.UUID) (*entities.SellerRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SellerRegistration), args.Error(1)
}

func (m *MockRegistrationGateway) Approve(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRegistrationGateway) Reject(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

// Mock AuthGateway
type MockAuthGateway struct {
	mock.Mock
}

func (m *MockAuthGateway) Login(ctx context.Context, in *entities.LoginInput) (*entities.AuthResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthResponse), args.Error(1)
}

func (m *MockAuthGateway) LoginGoogle(ctx context.Context, idToken string) (*entities.AuthResponse, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthResponse), args.Error(1)
}

func (m *MockAuthGateway) LoginFacebook(ctx context.Context, accessToken string) (*entities.AuthResponse, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthResponse), args.Error(1)
}

// Mock CatalogGateway
type MockCatalogGateway struct {
	mock.Mock
}

func (m *MockCatalogGateway) Suggest(ctx context.Context, query string, limit int) ([]entities.Suggestion, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Suggestion), args.Error(1)
}

// Mock UploadGateway
type MockUploadGateway struct {
	mock.Mock
}

func (m *MockUploadGateway) UploadImage(ctx context.Context, filename, contentType string, data []byte, folder string) (*entities.UploadResult, error) {
	args := m.Called(ctx, filename, contentType, data, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UploadResult), args.Error(1)
}

// Mock SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) SaveSession(ctx context.Context, session *entities.AuthSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) LoadSession(ctx context.Context) (*entities.AuthSession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthSession), args.Error(1)
}

func (m *MockSessionStore) ClearSession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock SearchHistoryStore
type MockSearchHistoryStore struct {
	mock.Mock
}

func (m *MockSearchHistoryStore) AddRecentSearch(ctx context.Context, query string) error {
	args := m.Called(ctx, query)
	return args.Error(0)
}

func (m *MockSearchHistoryStore) RecentSearches(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSearchHistoryStore) ClearRecentSearches(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
