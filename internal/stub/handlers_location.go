package stub

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sportmart.client/internal/domain/entities"
)

// ListProvinces handles GET /api/v1/locations/provinces. The raw seed is
// returned as-is: deduplication and garbage filtering are the client's job.
func (s *Store) ListProvinces(c *gin.Context) {
	s.mu.Lock()
	out := make([]entities.Province, len(s.provinces))
	copy(out, s.provinces)
	s.mu.Unlock()
	respond(c, http.StatusOK, out)
}

// ListDistricts handles GET /api/v1/locations/provinces/:id/districts
func (s *Store) ListDistricts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid province id")
		return
	}

	s.mu.Lock()
	districts, ok := s.districts[id]
	out := make([]entities.District, len(districts))
	copy(out, districts)
	s.mu.Unlock()

	if !ok {
		respondError(c, http.StatusNotFound, "province not found")
		return
	}
	respond(c, http.StatusOK, out)
}

// ListWards handles GET /api/v1/locations/districts/:id/wards
func (s *Store) ListWards(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid district id")
		return
	}

	s.mu.Lock()
	wards, ok := s.wards[id]
	out := make([]entities.Ward, len(wards))
	copy(out, wards)
	s.mu.Unlock()

	if !ok {
		respondError(c, http.StatusNotFound, "district not found")
		return
	}
	respond(c, http.StatusOK, out)
}

// Suggest handles GET /api/v1/products/suggest
func (s *Store) Suggest(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
	if limit <= 0 {
		limit = 8
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Suggestion, 0, limit)
	for _, p := range s.products {
		if query == "" || strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	respond(c, http.StatusOK, out)
}
