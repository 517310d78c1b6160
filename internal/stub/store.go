package stub

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/pkg/jwt"
)

// userRecord is a seeded or registered stub account.
type userRecord struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         entities.Role
}

// Store is the in-memory state behind the stub API. It exists for local
// development and integration tests; nothing here survives a restart.
type Store struct {
	JWT *jwt.Service

	mu            sync.Mutex
	users         map[uuid.UUID]*userRecord
	byUsername    map[string]uuid.UUID
	addresses     map[uuid.UUID][]*entities.AddressRecord
	registrations map[uuid.UUID]*entities.SellerRegistration
	provinces     []entities.Province
	districts     map[int][]entities.District
	wards         map[int][]entities.Ward
	products      []entities.Suggestion
}

// NewStore creates a seeded stub store.
func NewStore(jwtService *jwt.Service) *Store {
	s := &Store{
		JWT:           jwtService,
		users:         map[uuid.UUID]*userRecord{},
		byUsername:    map[string]uuid.UUID{},
		addresses:     map[uuid.UUID][]*entities.AddressRecord{},
		registrations: map[uuid.UUID]*entities.SellerRegistration{},
		districts:     map[int][]entities.District{},
		wards:         map[int][]entities.Ward{},
	}
	s.seed()
	return s
}

func (s *Store) addUser(username, email, passwordHash string, role entities.Role) *userRecord {
	u := &userRecord{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	s.users[u.ID] = u
	s.byUsername[strings.ToLower(username)] = u.ID
	return u
}

func (s *Store) findUser(username string) *userRecord {
	id, ok := s.byUsername[strings.ToLower(username)]
	if !ok {
		return nil
	}
	return s.users[id]
}

func (s *Store) userByID(id uuid.UUID) *userRecord {
	return s.users[id]
}

// shopNameTaken reports whether another user holds the shop name.
func (s *Store) shopNameTaken(name string, exclude uuid.UUID) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for userID, reg := range s.registrations {
		if userID == exclude {
			continue
		}
		if strings.ToLower(reg.ShopName) == lower {
			return true
		}
	}
	return false
}

// nationalIDTaken reports whether another user registered the id number.
func (s *Store) nationalIDTaken(idNumber string, exclude uuid.UUID) bool {
	for userID, reg := range s.registrations {
		if userID == exclude {
			continue
		}
		if reg.IDNumber.Valid && reg.IDNumber.String == idNumber {
			return true
		}
	}
	return false
}

// storeAddressFor creates the seller's STORE address on approval.
func (s *Store) storeAddressFor(userID uuid.UUID, reg *entities.SellerRegistration) {
	record := &entities.AddressRecord{
		ID:           uuid.New(),
		ContactName:  reg.IDFullName,
		ContactPhone: reg.Phone,
		FullAddress:  joinAddress(reg.StreetAddress, reg.WardName, reg.DistrictName, reg.ProvinceName),
		ProvinceID:   reg.ProvinceID,
		ProvinceName: reg.ProvinceName,
		DistrictID:   reg.DistrictID,
		DistrictName: reg.DistrictName,
		WardCode:     reg.WardCode,
		WardName:     reg.WardName,
		Type:         entities.AddressTypeStore,
		CreatedAt:    time.Now(),
	}
	s.addresses[userID] = append(s.addresses[userID], record)
}

func joinAddress(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if trimmed := strings.TrimSpace(seg); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}
