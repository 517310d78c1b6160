package gateways

import (
	"context"

	"sportmart.client/internal/domain/entities"
)

// AuthGateway defines the credential exchange operations
type AuthGateway interface {
	Login(ctx context.Context, in *entities.LoginInput) (*entities.AuthResponse, error)
	LoginGoogle(ctx context.Context, idToken string) (*entities.AuthResponse, error)
	LoginFacebook(ctx context.Context, accessToken string) (*entities.AuthResponse, error)
}

// CatalogGateway serves product search suggestions
type CatalogGateway interface {
	Suggest(ctx context.Context, query string, limit int) ([]entities.Suggestion, error)
}

// UploadGateway sends multipart image uploads with a folder hint
type UploadGateway interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte, folder string) (*entities.UploadResult, error)
}

// SessionStore persists the auth session across launches
type SessionStore interface {
	SaveSession(ctx context.Context, session *entities.AuthSession) error
	LoadSession(ctx context.Context) (*entities.AuthSession, error)
	ClearSession(ctx context.Context) error
}

// SearchHistoryStore keeps the bounded recent-searches list
type SearchHistoryStore interface {
	AddRecentSearch(ctx context.Context, query string) error
	RecentSearches(ctx context.Context, limit int) ([]string, error)
	ClearRecentSearches(ctx context.Context) error
}
