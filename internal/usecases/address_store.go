package usecases

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/internal/domain/gateways"
	"sportmart.client/pkg/logger"
)

// Confirmer asks the user to confirm a destructive action. The default
// confirms unconditionally so the engine stays usable headless.
type Confirmer func(prompt string) bool

// AddressStore is the client-side cache of the user's address records. All
// mutations of the cached list flow through normalization, which keeps the
// single-primary invariant intact even when a backend response is momentarily
// inconsistent.
type AddressStore struct {
	gw      gateways.AddressGateway
	confirm Confirmer

	mu            sync.Mutex
	records       []*entities.AddressRecord
	exclude       []entities.AddressType
	loading       bool
	actionLoading bool
	errMessage    string
}

// NewAddressStore creates a new address store
func NewAddressStore(gw gateways.AddressGateway, confirm Confirmer) *AddressStore {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &AddressStore{gw: gw, confirm: confirm}
}

// Fetch retrieves and normalizes the user's addresses, remembering the
// exclusion set for subsequent mutations. On failure the list is left empty
// and the error message is retained for the UI.
func (s *AddressStore) Fetch(ctx context.Context, exclude ...entities.AddressType) ([]*entities.AddressRecord, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	records, err := s.gw.List(ctx, exclude)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exclude = exclude
	if err != nil {
		s.records = nil
		s.errMessage = err.Error()
		return nil, err
	}
	s.errMessage = ""
	s.records = NormalizeAddresses(records, exclude, uuid.Nil)
	return snapshot(s.records), nil
}

// Create translates the form draft to the wire shape, persists it and merges
// the result into the cache. Prior state is untouched on failure.
func (s *AddressStore) Create(ctx context.Context, draft *entities.AddressDraft) (*entities.AddressRecord, error) {
	s.setActionLoading(true)
	defer s.setActionLoading(false)

	created, err := s.gw.Create(ctx, PayloadFromDraft(draft, entities.AddressTypeHome))
	if err != nil {
		s.rememberError(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
	merged := append(withoutID(s.records, created.ID), created)
	forced := uuid.Nil
	if created.IsPrimary {
		forced = created.ID
	}
	s.records = NormalizeAddresses(merged, s.exclude, forced)
	return created, nil
}

// Update modifies an existing record and re-normalizes the cache.
func (s *AddressStore) Update(ctx context.Context, id uuid.UUID, draft *entities.AddressDraft) (*entities.AddressRecord, error) {
	s.setActionLoading(true)
	defer s.setActionLoading(false)

	addrType := entities.AddressTypeHome
	s.mu.Lock()
	if existing := findByID(s.records, id); existing != nil {
		addrType = existing.Type
	}
	s.mu.Unlock()

	updated, err := s.gw.Update(ctx, id, PayloadFromDraft(draft, addrType))
	if err != nil {
		s.rememberError(err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
	merged := append(withoutID(s.records, updated.ID), updated)
	forced := uuid.Nil
	if updated.IsPrimary && updated.Type == entities.AddressTypeHome {
		forced = updated.ID
	}
	s.records = NormalizeAddresses(merged, s.exclude, forced)
	return updated, nil
}

// Delete removes a HOME address after interactive confirmation. A 404 from
// the backend means the record is already gone and counts as success; the
// list is force-refreshed in that case.
func (s *AddressStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	record := findByID(s.records, id)
	s.mu.Unlock()

	if record != nil && record.Type == entities.AddressTypeStore {
		return domainerrors.Forbidden("địa chỉ cửa hàng không thể xoá")
	}
	if !s.confirm("Bạn có chắc muốn xoá địa chỉ này?") {
		return nil
	}

	s.setActionLoading(true)
	defer s.setActionLoading(false)

	if err := s.gw.Delete(ctx, id); err != nil {
		if domainerrors.StatusCode(err) == 404 {
			logger.Debug(ctx, "address already deleted, refreshing", zap.String("id", id.String()))
			return s.refresh(ctx)
		}
		s.rememberError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
	s.records = NormalizeAddresses(withoutID(s.records, id), s.exclude, uuid.Nil)
	return nil
}

// SetPrimary marks the given record primary; the backend resolves concurrent
// conflicts, but the cache is re-normalized optimistically right away.
func (s *AddressStore) SetPrimary(ctx context.Context, id uuid.UUID) error {
	s.setActionLoading(true)
	defer s.setActionLoading(false)

	updated, err := s.gw.SetPrimary(ctx, id)
	if err != nil {
		s.rememberError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
	merged := append(withoutID(s.records, updated.ID), updated)
	s.records = NormalizeAddresses(merged, s.exclude, updated.ID)
	return nil
}

// Records returns a snapshot of the normalized cache.
func (s *AddressStore) Records() []*entities.AddressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.records)
}

// Loading reports whether a list fetch is in flight.
func (s *AddressStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ActionLoading reports whether a mutation is in flight; the UI disables
// action buttons on it.
func (s *AddressStore) ActionLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actionLoading
}

// ErrorMessage returns the last surfaced error, empty after any success.
func (s *AddressStore) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMessage
}

func (s *AddressStore) refresh(ctx context.Context) error {
	s.mu.Lock()
	exclude := s.exclude
	s.mu.Unlock()

	records, err := s.gw.List(ctx, exclude)
	if err != nil {
		s.rememberError(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = ""
	s.records = NormalizeAddresses(records, exclude, uuid.Nil)
	return nil
}

func (s *AddressStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *AddressStore) setActionLoading(v bool) {
	s.mu.Lock()
	s.actionLoading = v
	s.mu.Unlock()
}

func (s *AddressStore) rememberError(err error) {
	s.mu.Lock()
	s.errMessage = err.Error()
	s.mu.Unlock()
}

// NormalizeAddresses applies the cache invariants to an address list:
//
//  1. records whose type is in the exclusion set are dropped;
//  2. when primaryID is set, that record's primary flag is forced true and
//     every other record of the same type is forced false; otherwise at most
//     one HOME primary survives (first found wins on inconsistent input);
//  3. primary records sort first, then by creation time descending.
//
// The primary flag carries no meaning for STORE records and is cleared there
// unless explicitly forced.
func NormalizeAddresses(records []*entities.AddressRecord, exclude []entities.AddressType, primaryID uuid.UUID) []*entities.AddressRecord {
	excluded := make(map[entities.AddressType]bool, len(exclude))
	for _, t := range exclude {
		excluded[t] = true
	}

	out := make([]*entities.AddressRecord, 0, len(records))
	for _, r := range records {
		if r == nil || excluded[r.Type] {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}

	var forcedType entities.AddressType
	if primaryID != uuid.Nil {
		for _, r := range out {
			if r.ID == primaryID {
				forcedType = r.Type
			}
		}
	}

	if forcedType != "" {
		for _, r := range out {
			if r.Type == forcedType {
				r.IsPrimary = r.ID == primaryID
			} else if r.Type == entities.AddressTypeStore {
				r.IsPrimary = false
			}
		}
	} else {
		seenPrimary := false
		for _, r := range out {
			if r.Type != entities.AddressTypeHome {
				r.IsPrimary = false
				continue
			}
			if r.IsPrimary {
				if seenPrimary {
					r.IsPrimary = false
				}
				seenPrimary = true
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func findByID(records []*entities.AddressRecord, id uuid.UUID) *entities.AddressRecord {
	for _, r := range records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func withoutID(records []*entities.AddressRecord, id uuid.UUID) []*entities.AddressRecord {
	out := make([]*entities.AddressRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}

func snapshot(records []*entities.AddressRecord) []*entities.AddressRecord {
	out := make([]*entities.AddressRecord, len(records))
	copy(out, records)
	return out
}
