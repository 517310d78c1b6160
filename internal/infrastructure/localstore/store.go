package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"sportmart.client/internal/domain/entities"
	domainerrors "sportmart.client/internal/domain/errors"
)

const sessionKey = "session"

// Store is the device-local persistence layer, the analog of the browser's
// localStorage: the auth session plus a bounded recent-searches list.
type Store struct {
	db        *gorm.DB
	maxRecent int
}

// Open opens (or creates) the sqlite store at path. ":memory:" works for tests.
func Open(path string, maxRecent int) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&sessionRow{}, &recentSearchRow{}); err != nil {
		return nil, err
	}
	if maxRecent <= 0 {
		maxRecent = 10
	}
	return &Store{db: db, maxRecent: maxRecent}, nil
}

// NewWithDB wraps an already-open gorm handle (used by tests).
func NewWithDB(db *gorm.DB, maxRecent int) (*Store, error) {
	if err := db.AutoMigrate(&sessionRow{}, &recentSearchRow{}); err != nil {
		return nil, err
	}
	if maxRecent <= 0 {
		maxRecent = 10
	}
	return &Store{db: db, maxRecent: maxRecent}, nil
}

// SaveSession persists the session, replacing any previous one.
func (s *Store) SaveSession(ctx context.Context, session *entities.AuthSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	row := sessionRow{Key: sessionKey, Payload: string(payload), UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).Save(&row).Error
}

// LoadSession returns the persisted session, ErrNotFound when logged out.
func (s *Store) LoadSession(ctx context.Context) (*entities.AuthSession, error) {
	var row sessionRow
	if err := s.db.WithContext(ctx).Where("key = ?", sessionKey).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var session entities.AuthSession
	if err := json.Unmarshal([]byte(row.Payload), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ClearSession removes the persisted session.
func (s *Store) ClearSession(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("key = ?", sessionKey).Delete(&sessionRow{}).Error
}

// AddRecentSearch records a query at the head of the recent list. Duplicates
// move to the head; the list is trimmed to the configured cap.
func (s *Store) AddRecentSearch(ctx context.Context, query string) error {
	if query == "" {
		return nil
	}
	row := recentSearchRow{Query: query, SearchedAt: time.Now()}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	return s.trimRecent(ctx)
}

// RecentSearches returns the newest-first recent queries.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > s.maxRecent {
		limit = s.maxRecent
	}
	var rows []recentSearchRow
	if err := s.db.WithContext(ctx).Order("searched_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	queries := make([]string, 0, len(rows))
	for _, r := range rows {
		queries = append(queries, r.Query)
	}
	return queries, nil
}

// ClearRecentSearches empties the recent list.
func (s *Store) ClearRecentSearches(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&recentSearchRow{}).Error
}

func (s *Store) trimRecent(ctx context.Context) error {
	var keep []string
	err := s.db.WithContext(ctx).
		Model(&recentSearchRow{}).
		Order("searched_at DESC").
		Limit(s.maxRecent).
		Pluck("query", &keep).Error
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Where("query NOT IN ?", keep).Delete(&recentSearchRow{}).Error
}
