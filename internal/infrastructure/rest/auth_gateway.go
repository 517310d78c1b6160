package rest

import (
	"context"
	"net/url"
	"strconv"

	"sportmart.client/internal/domain/entities"
)

// AuthGateway implements the credential exchanges
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates a new auth gateway
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login exchanges username/password for a session
func (g *AuthGateway) Login(ctx context.Context, in *entities.LoginInput) (*entities.AuthResponse, error) {
	var resp entities.AuthResponse
	if err := g.client.post(ctx, "/api/v1/auth/login", in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginGoogle exchanges a Google ID token for a session
func (g *AuthGateway) LoginGoogle(ctx context.Context, idToken string) (*entities.AuthResponse, error) {
	var resp entities.AuthResponse
	if err := g.client.post(ctx, "/api/v1/auth/google", &entities.GoogleLoginInput{IDToken: idToken}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginFacebook exchanges a Facebook access token for a session
func (g *AuthGateway) LoginFacebook(ctx context.Context, accessToken string) (*entities.AuthResponse, error) {
	var resp entities.AuthResponse
	if err := g.client.post(ctx, "/api/v1/auth/facebook", &entities.FacebookLoginInput{AccessToken: accessToken}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CatalogGateway implements product search suggestions
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway creates a new catalog gateway
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

// Suggest returns suggestion rows for a query prefix
func (g *CatalogGateway) Suggest(ctx context.Context, query string, limit int) ([]entities.Suggestion, error) {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var suggestions []entities.Suggestion
	if err := g.client.get(ctx, "/api/v1/products/suggest", q, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// UploadGateway implements the generic multipart image upload
type UploadGateway struct {
	client *Client
}

// NewUploadGateway creates a new upload gateway
func NewUploadGateway(client *Client) *UploadGateway {
	return &UploadGateway{client: client}
}

// UploadImage sends one file with a folder hint and returns its hosted URL
func (g *UploadGateway) UploadImage(ctx context.Context, filename, contentType string, data []byte, folder string) (*entities.UploadResult, error) {
	var result entities.UploadResult
	fields := map[string]string{"folder": folder}
	if err := g.client.doMultipart(ctx, "/api/v1/upload", "file", filename, contentType, data, fields, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
