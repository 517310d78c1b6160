package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "sportmart.client/internal/domain/errors"
	"sportmart.client/pkg/logger"
)

// envelope is the backend's uniform response wrapper. It is decoded exactly
// once, here, instead of optional-chaining into nested data fields at every
// call site.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TokenProvider supplies the current bearer token, empty when logged out.
type TokenProvider func() string

// Client is the shared HTTP transport for all gateways.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
	metrics *Metrics
}

// Option configures the Client.
type Option func(*Client)

// WithTokenProvider attaches bearer-token resolution to every request.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.token = tp }
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMetrics attaches prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domainerrors.InternalError(err)
		}
		reader = bytes.NewReader(payload)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// doMultipart uploads one file part plus form fields.
func (c *Client) doMultipart(ctx context.Context, path, fieldName, filename, contentType string, data []byte, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if _, err := part.Write(data); err != nil {
		return domainerrors.InternalError(err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return domainerrors.InternalError(err)
		}
	}
	if err := w.Close(); err != nil {
		return domainerrors.InternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, route string, out interface{}) error {
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(start)

	ctx := context.WithValue(req.Context(), "request_id", requestID)
	if err != nil {
		c.observe(req.Method, route, 0, latency)
		logger.Warn(ctx, "request failed", zap.String("method", req.Method), zap.String("path", route), zap.Error(err))
		return domainerrors.Network(err)
	}
	defer resp.Body.Close()

	c.observe(req.Method, route, resp.StatusCode, latency)
	logger.LogRequest(ctx, req.Method, route, resp.StatusCode, latency, c.baseURL)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.Network(err)
	}

	// 204 carries no envelope.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return mapStatus(resp.StatusCode, "")
		}
		return domainerrors.InternalError(fmt.Errorf("malformed response envelope: %w", err))
	}

	status := resp.StatusCode
	if env.Status != 0 {
		status = env.Status
	}
	if status >= 400 {
		return mapStatus(status, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return domainerrors.InternalError(fmt.Errorf("decode response data: %w", err))
		}
	}
	return nil
}

func (c *Client) observe(method, route string, status int, latency time.Duration) {
	if c.metrics != nil {
		c.metrics.Observe(method, route, status, latency)
	}
}

// mapStatus translates an error status plus backend message into the
// client-side error taxonomy. The backend message, when present, is what the
// UI toasts.
func mapStatus(status int, message string) *domainerrors.AppError {
	switch status {
	case http.StatusNotFound:
		if message == "" {
			message = "không tìm thấy dữ liệu"
		}
		return domainerrors.NotFound(message)
	case http.StatusUnauthorized:
		if message == "" {
			message = "phiên đăng nhập hết hạn, vui lòng đăng nhập lại"
		}
		return domainerrors.Unauthorized(message)
	case http.StatusForbidden:
		if message == "" {
			message = "bạn không có quyền thực hiện thao tác này"
		}
		return domainerrors.Forbidden(message)
	case http.StatusConflict:
		return domainerrors.Conflict(message)
	default:
		if status >= 500 {
			return domainerrors.NewAppError(status, fallback(message, "máy chủ gặp sự cố, vui lòng thử lại"), domainerrors.ErrBadRequest)
		}
		return domainerrors.NewAppError(status, fallback(message, "yêu cầu không hợp lệ"), domainerrors.ErrBadRequest)
	}
}

func fallback(message, def string) string {
	if message != "" {
		return message
	}
	return def
}
