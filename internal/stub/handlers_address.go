package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sportmart.client/internal/domain/entities"
)

// ListAddresses handles GET /api/v1/addresses with the optional
// excludeTypes filter.
func (s *Store) ListAddresses(c *gin.Context) {
	userID := currentUserID(c)

	excluded := map[entities.AddressType]bool{}
	if raw := c.Query("excludeTypes"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			excluded[entities.AddressType(strings.TrimSpace(t))] = true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.AddressRecord, 0)
	for _, r := range s.addresses[userID] {
		if !excluded[r.Type] {
			copied := *r
			out = append(out, &copied)
		}
	}
	respond(c, http.StatusOK, out)
}

// GetAddress handles GET /api/v1/addresses/:id
func (s *Store) GetAddress(c *gin.Context) {
	userID := currentUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid address id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.addresses[userID] {
		if r.ID == id {
			copied := *r
			respond(c, http.StatusOK, &copied)
			return
		}
	}
	respondError(c, http.StatusNotFound, "address not found")
}

// CreateAddress handles POST /api/v1/addresses
func (s *Store) CreateAddress(c *gin.Context) {
	userID := currentUserID(c)
	var in entities.AddressPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid address payload")
		return
	}
	if in.Type == "" {
		in.Type = entities.AddressTypeHome
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.recordFromPayload(uuid.New(), &in)
	record.CreatedAt = time.Now()

	if in.Type == entities.AddressTypeHome {
		// First HOME address becomes primary; an explicit primary demotes
		// the rest. The backend owns this conflict resolution.
		if in.IsPrimary || !s.hasHome(userID) {
			record.IsPrimary = true
			s.clearPrimary(userID)
		}
	}
	s.addresses[userID] = append(s.addresses[userID], record)

	copied := *record
	respond(c, http.StatusCreated, &copied)
}

// UpdateAddress handles PUT /api/v1/addresses/:id
func (s *Store) UpdateAddress(c *gin.Context) {
	userID := currentUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid address id")
		return
	}
	var in entities.AddressPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid address payload")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.addresses[userID] {
		if r.ID != id {
			continue
		}
		updated := s.recordFromPayload(id, &in)
		updated.Type = r.Type // the address type is immutable
		updated.CreatedAt = r.CreatedAt
		updated.IsPrimary = r.IsPrimary
		if in.IsPrimary && r.Type == entities.AddressTypeHome {
			s.clearPrimary(userID)
			updated.IsPrimary = true
		}
		s.addresses[userID][i] = updated

		copied := *updated
		respond(c, http.StatusOK, &copied)
		return
	}
	respondError(c, http.StatusNotFound, "address not found")
}

// DeleteAddress handles DELETE /api/v1/addresses/:id. Deleting a missing
// record is a 404, which the client treats as already-gone.
func (s *Store) DeleteAddress(c *gin.Context) {
	userID := currentUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid address id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.addresses[userID]
	for i, r := range records {
		if r.ID != id {
			continue
		}
		if r.Type == entities.AddressTypeStore {
			respondError(c, http.StatusForbidden, "store address cannot be deleted")
			return
		}
		s.addresses[userID] = append(records[:i], records[i+1:]...)
		respond(c, http.StatusOK, gin.H{"deleted": true})
		return
	}
	respondError(c, http.StatusNotFound, "address not found")
}

// SetPrimaryAddress handles PATCH /api/v1/addresses/:id/primary
func (s *Store) SetPrimaryAddress(c *gin.Context) {
	userID := currentUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid address id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var target *entities.AddressRecord
	for _, r := range s.addresses[userID] {
		if r.ID == id {
			target = r
			break
		}
	}
	if target == nil {
		respondError(c, http.StatusNotFound, "address not found")
		return
	}
	if target.Type != entities.AddressTypeHome {
		respondError(c, http.StatusBadRequest, "only delivery addresses can be primary")
		return
	}

	s.clearPrimary(userID)
	target.IsPrimary = true

	copied := *target
	respond(c, http.StatusOK, &copied)
}

func (s *Store) recordFromPayload(id uuid.UUID, in *entities.AddressPayload) *entities.AddressRecord {
	return &entities.AddressRecord{
		ID:           id,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		FullAddress:  in.FullAddress,
		ProvinceID:   in.ProvinceID,
		ProvinceName: s.provinceName(in.ProvinceID),
		DistrictID:   in.DistrictID,
		DistrictName: s.districtName(in.ProvinceID, in.DistrictID),
		WardCode:     in.WardCode,
		WardName:     s.wardName(in.DistrictID, in.WardCode),
		Type:         in.Type,
		IsPrimary:    in.IsPrimary,
	}
}

func (s *Store) hasHome(userID uuid.UUID) bool {
	for _, r := range s.addresses[userID] {
		if r.Type == entities.AddressTypeHome {
			return true
		}
	}
	return false
}

func (s *Store) clearPrimary(userID uuid.UUID) {
	for _, r := range s.addresses[userID] {
		if r.Type == entities.AddressTypeHome {
			r.IsPrimary = false
		}
	}
}

func (s *Store) provinceName(id int) string {
	for _, p := range s.provinces {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (s *Store) districtName(provinceID, id int) string {
	for _, d := range s.districts[provinceID] {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

func (s *Store) wardName(districtID int, code string) string {
	for _, w := range s.wards[districtID] {
		if w.Code == code {
			return w.Name
		}
	}
	return ""
}
