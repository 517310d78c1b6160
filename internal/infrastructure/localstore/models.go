package localstore

import "time"

// sessionRow is the single-row persisted auth session.
type sessionRow struct {
	Key       string `gorm:"primaryKey;type:varchar(32)"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (sessionRow) TableName() string { return "session_records" }

// recentSearchRow is one remembered search query.
type recentSearchRow struct {
	Query      string `gorm:"primaryKey;type:varchar(255)"`
	SearchedAt time.Time `gorm:"index"`
}

func (recentSearchRow) TableName() string { return "recent_searches" }
