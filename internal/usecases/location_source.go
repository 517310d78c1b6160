package usecases

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/internal/domain/gateways"
)

// defaultDenylist filters known test/garbage entries out of the master data
// before display.
var defaultDenylist = []string{"test", "demo", "dummy"}

// LocationSource exposes the province→district→ward cascade. Selecting a
// level synchronously resets everything below it, and a generation counter
// per level discards responses that arrive for a superseded selection.
type LocationSource struct {
	gw       gateways.LocationGateway
	denylist []string
	collator *collate.Collator

	mu               sync.Mutex
	provinces        []entities.Province
	districts        []entities.District
	wards            []entities.Ward
	selectedProvince int
	selectedDistrict int

	loadingProvinces bool
	loadingDistricts bool
	loadingWards     bool

	provinceErr string
	districtErr string
	wardErr     string

	provinceGen uint64
	districtGen uint64
	wardGen     uint64
}

// NewLocationSource creates a new location source
func NewLocationSource(gw gateways.LocationGateway) *LocationSource {
	return &LocationSource{
		gw:       gw,
		denylist: defaultDenylist,
		collator: collate.New(language.Vietnamese),
	}
}

// LoadProvinces fetches the top level of the cascade.
func (s *LocationSource) LoadProvinces(ctx context.Context) error {
	s.mu.Lock()
	s.provinceGen++
	gen := s.provinceGen
	s.loadingProvinces = true
	s.provinceErr = ""
	s.mu.Unlock()

	provinces, err := s.gw.Provinces(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.provinceGen {
		return nil // superseded by a newer load
	}
	s.loadingProvinces = false
	if err != nil {
		s.provinces = nil
		s.provinceErr = err.Error()
		return err
	}
	s.provinces = dedupeProvinces(s.filterAndSortNames(provinceNames(provinces)), provinces)
	return nil
}

// SelectProvince picks a province and fetches its districts. A non-positive
// id silently clears the selection and everything below it.
func (s *LocationSource) SelectProvince(ctx context.Context, id int) error {
	s.mu.Lock()
	s.selectedProvince = id
	s.selectedDistrict = 0
	s.districts = nil
	s.wards = nil
	s.districtErr = ""
	s.wardErr = ""
	s.districtGen++
	s.wardGen++
	if id <= 0 {
		s.selectedProvince = 0
		s.loadingDistricts = false
		s.loadingWards = false
		s.mu.Unlock()
		return nil
	}
	gen := s.districtGen
	s.loadingDistricts = true
	s.mu.Unlock()

	districts, err := s.gw.Districts(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.districtGen {
		return nil // a newer selection superseded this fetch
	}
	s.loadingDistricts = false
	if err != nil {
		s.districts = nil
		s.districtErr = err.Error()
		return err
	}
	s.districts = dedupeDistricts(s.filterAndSortNames(districtNames(districts)), districts)
	return nil
}

// SelectDistrict picks a district and fetches its wards; same contract as
// SelectProvince, one level down.
func (s *LocationSource) SelectDistrict(ctx context.Context, id int) error {
	s.mu.Lock()
	s.selectedDistrict = id
	s.wards = nil
	s.wardErr = ""
	s.wardGen++
	if id <= 0 {
		s.selectedDistrict = 0
		s.loadingWards = false
		s.mu.Unlock()
		return nil
	}
	gen := s.wardGen
	s.loadingWards = true
	s.mu.Unlock()

	wards, err := s.gw.Wards(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.wardGen {
		return nil
	}
	s.loadingWards = false
	if err != nil {
		s.wards = nil
		s.wardErr = err.Error()
		return err
	}
	s.wards = dedupeWards(s.filterAndSortNames(wardNames(wards)), wards)
	return nil
}

// Provinces returns the loaded provinces snapshot.
func (s *LocationSource) Provinces() []entities.Province {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Province, len(s.provinces))
	copy(out, s.provinces)
	return out
}

// Districts returns the loaded districts snapshot.
func (s *LocationSource) Districts() []entities.District {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.District, len(s.districts))
	copy(out, s.districts)
	return out
}

// Wards returns the loaded wards snapshot.
func (s *LocationSource) Wards() []entities.Ward {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Ward, len(s.wards))
	copy(out, s.wards)
	return out
}

// Loading reports the per-level loading flags so dropdowns can distinguish
// "loading" from "select parent first".
func (s *LocationSource) Loading() (provinces, districts, wards bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingProvinces, s.loadingDistricts, s.loadingWards
}

// Errors returns the per-level error messages.
func (s *LocationSource) Errors() (provinceErr, districtErr, wardErr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provinceErr, s.districtErr, s.wardErr
}

// Selection returns the current province and district ids.
func (s *LocationSource) Selection() (provinceID, districtID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedProvince, s.selectedDistrict
}

// filterAndSortNames drops denylisted and duplicate display names and sorts
// the survivors with the Vietnamese collator.
func (s *LocationSource) filterAndSortNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] || s.denylisted(name) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	s.collator.SortStrings(out)
	return out
}

func (s *LocationSource) denylisted(name string) bool {
	lower := strings.ToLower(name)
	for _, bad := range s.denylist {
		if strings.Contains(lower, bad) {
			return true
		}
	}
	return false
}

func provinceNames(in []entities.Province) []string {
	names := make([]string, len(in))
	for i, p := range in {
		names[i] = p.Name
	}
	return names
}

func districtNames(in []entities.District) []string {
	names := make([]string, len(in))
	for i, d := range in {
		names[i] = d.Name
	}
	return names
}

func wardNames(in []entities.Ward) []string {
	names := make([]string, len(in))
	for i, w := range in {
		names[i] = w.Name
	}
	return names
}

func dedupeProvinces(ordered []string, in []entities.Province) []entities.Province {
	byName := make(map[string]entities.Province, len(in))
	for i := len(in) - 1; i >= 0; i-- { // first occurrence wins
		byName[in[i].Name] = in[i]
	}
	out := make([]entities.Province, 0, len(ordered))
	for _, name := range ordered {
		out = append(out, byName[name])
	}
	return out
}

func dedupeDistricts(ordered []string, in []entities.District) []entities.District {
	byName := make(map[string]entities.District, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		byName[in[i].Name] = in[i]
	}
	out := make([]entities.District, 0, len(ordered))
	for _, name := range ordered {
		out = append(out, byName[name])
	}
	return out
}

func dedupeWards(ordered []string, in []entities.Ward) []entities.Ward {
	byName := make(map[string]entities.Ward, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		byName[in[i].Name] = in[i]
	}
	out := make([]entities.Ward, 0, len(ordered))
	for _, name := range ordered {
		out = append(out, byName[name])
	}
	return out
}
