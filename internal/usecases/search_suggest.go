package usecases

import (
	"context"
	"strings"
	"sync"
	"time"

	"sportmart.client/internal/domain/entities"
	"sportmart.client/internal/domain/gateways"
)

// DefaultSuggestionLimit bounds one suggestion dropdown.
const DefaultSuggestionLimit = 8

// SearchSuggester debounces keystrokes into suggestion fetches. The timer
// handle is stored and canceled on every new keystroke and on Teardown, and
// a generation counter drops late results for superseded queries.
type SearchSuggester struct {
	gw      gateways.CatalogGateway
	history gateways.SearchHistoryStore
	delay   time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	query    string
	results  []entities.Suggestion
	loading  bool
	errMsg   string
	onUpdate func([]entities.Suggestion)
}

// NewSearchSuggester creates a new suggester with the given quiet period.
func NewSearchSuggester(gw gateways.CatalogGateway, history gateways.SearchHistoryStore, delay time.Duration) *SearchSuggester {
	if delay <= 0 {
		delay = 250 * time.Millisecond
	}
	return &SearchSuggester{gw: gw, history: history, delay: delay}
}

// OnUpdate registers a callback invoked with fresh results.
func (s *SearchSuggester) OnUpdate(fn func([]entities.Suggestion)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// Input records a keystroke. Only the most recent input after the quiet
// period triggers a fetch; an empty query clears the dropdown immediately.
func (s *SearchSuggester) Input(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.query = query

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		s.results = nil
		s.loading = false
		return
	}

	gen := s.gen
	s.loading = true
	s.timer = time.AfterFunc(s.delay, func() {
		s.fetch(ctx, trimmed, gen)
	})
}

// Commit records a confirmed search (enter/suggestion click) to the recent
// list.
func (s *SearchSuggester) Commit(ctx context.Context, query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || s.history == nil {
		return nil
	}
	return s.history.AddRecentSearch(ctx, trimmed)
}

// Recent returns the newest-first recent searches.
func (s *SearchSuggester) Recent(ctx context.Context, limit int) ([]string, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.RecentSearches(ctx, limit)
}

// Results returns the current suggestion snapshot.
func (s *SearchSuggester) Results() []entities.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Suggestion, len(s.results))
	copy(out, s.results)
	return out
}

// Loading reports whether a fetch is pending or in flight.
func (s *SearchSuggester) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ErrorMessage returns the last fetch error, empty after any success.
func (s *SearchSuggester) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Teardown cancels any pending fetch; call on component unmount.
func (s *SearchSuggester) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.loading = false
}

func (s *SearchSuggester) fetch(ctx context.Context, query string, gen uint64) {
	results, err := s.gw.Suggest(ctx, query, DefaultSuggestionLimit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return // superseded by a newer keystroke
	}
	s.loading = false
	if err != nil {
		s.results = nil
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.results = results
	if s.onUpdate != nil {
		s.onUpdate(results)
	}
}
