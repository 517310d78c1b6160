package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "sportmart.client/internal/domain/errors"
)

func envelopeJSON(status int, message string, data interface{}) string {
	raw, _ := json.Marshal(map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
	return string(raw)
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		fmt.Fprint(w, envelopeJSON(200, "", map[string]string{"name": "Quận 1"}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.get(context.Background(), "/api/v1/test", nil, &out))
	assert.Equal(t, "Quận 1", out.Name)
}

func TestClientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		fmt.Fprint(w, envelopeJSON(200, "", nil))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, WithTokenProvider(func() string { return "token-123" }))
	require.NoError(t, c.get(context.Background(), "/api/v1/test", nil, nil))
}

func TestClientNoAuthHeaderWhenLoggedOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprint(w, envelopeJSON(200, "", nil))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, WithTokenProvider(func() string { return "" }))
	require.NoError(t, c.get(context.Background(), "/api/v1/test", nil, nil))
}

func TestClientMapsErrorStatuses(t *testing.T) {
	tests := []struct {
		httpStatus int
		message    string
		wantCode   int
		wantMsg    string
	}{
		{404, "address not found", 404, "address not found"},
		{404, "", 404, "không tìm thấy dữ liệu"},
		{401, "", 401, "phiên đăng nhập hết hạn, vui lòng đăng nhập lại"},
		{403, "", 403, "bạn không có quyền thực hiện thao tác này"},
		{409, "tên shop đã tồn tại", 409, "tên shop đã tồn tại"},
		{500, "", 500, "máy chủ gặp sự cố, vui lòng thử lại"},
		{422, "", 422, "yêu cầu không hợp lệ"},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.httpStatus)
			fmt.Fprint(w, envelopeJSON(tt.httpStatus, tt.message, nil))
		}))

		c := NewClient(srv.URL, 5*time.Second)
		err := c.get(context.Background(), "/api/v1/test", nil, nil)
		srv.Close()

		require.Error(t, err, "status %d", tt.httpStatus)
		assert.Equal(t, tt.wantCode, domainerrors.StatusCode(err))
		assert.Equal(t, tt.wantMsg, err.Error())
	}
}

func TestClientEnvelopeStatusOverridesHTTPStatus(t *testing.T) {
	// Some endpoints return HTTP 200 with an error status inside the
	// envelope; the inner status wins.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelopeJSON(404, "registration not found", nil))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	err := c.get(context.Background(), "/api/v1/test", nil, nil)

	require.Error(t, err)
	assert.Equal(t, 404, domainerrors.StatusCode(err))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClientNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	require.NoError(t, c.delete(context.Background(), "/api/v1/test"))
}

func TestClientNetworkErrorMapped(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	err := c.get(context.Background(), "/api/v1/test", nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.Equal(t, http.StatusServiceUnavailable, domainerrors.StatusCode(err))
}

func TestClientMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	err := c.get(context.Background(), "/api/v1/test", nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, domainerrors.StatusCode(err))
}

func TestClientMultipartPreservesContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "kyc", r.FormValue("folder"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "front.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))

		fmt.Fprint(w, envelopeJSON(200, "", map[string]string{
			"url":      "https://cdn.sportmart.local/kyc/front.jpg",
			"publicId": "kyc/front",
		}))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	var out struct {
		URL string `json:"url"`
	}
	err := c.doMultipart(context.Background(), "/api/v1/upload", "file", "front.jpg", "image/jpeg",
		[]byte{0xFF, 0xD8}, map[string]string{"folder": "kyc"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.sportmart.local/kyc/front.jpg", out.URL)
}

func TestClientObservesMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelopeJSON(200, "", nil))
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := NewClient(srv.URL, 5*time.Second, WithMetrics(m))

	require.NoError(t, c.get(context.Background(), "/api/v1/test", nil, nil))

	count := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/test", "200"))
	assert.Equal(t, float64(1), count)
}

func TestClientMetricsStatusZeroWhenUnreachable(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, WithMetrics(m))

	_ = c.get(context.Background(), "/api/v1/test", nil, nil)

	count := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/v1/test", "0"))
	assert.Equal(t, float64(1), count)
}
