package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rutcheck/pkg/requestcontext"
)

func captureRequestID(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(HeaderRequestID, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec
}

func TestRequestID(t *testing.T) {
	t.Run("generates a uuid when absent", func(t *testing.T) {
		seen, rec := captureRequestID(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("reuses a caller supplied id", func(t *testing.T) {
		seen, rec := captureRequestID(t, "trace-abc-123")
		assert.Equal(t, "trace-abc-123", seen)
		assert.Equal(t, "trace-abc-123", rec.Header().Get(HeaderRequestID))
	})

	t.Run("replaces oversized ids", func(t *testing.T) {
		seen, _ := captureRequestID(t, strings.Repeat("a", 500))
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("replaces ids with control characters", func(t *testing.T) {
		seen, _ := captureRequestID(t, "abc\x01def")
		assert.NotEqual(t, "abc\x01def", seen)
	})
}

func TestClientMetadata(t *testing.T) {
	var ip, ua string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = requestcontext.ClientIP(r.Context())
		ua = requestcontext.UserAgent(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "rut-client/1.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.7", ip)
	assert.Equal(t, "rut-client/1.0", ua)
}

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"x-real-ip", map[string]string{"X-Real-IP": " 198.51.100.2 "}, "127.0.0.1:1234", "198.51.100.2"},
		{"ipv4 remote", nil, "192.0.2.1:5678", "192.0.2.1"},
		{"ipv6 remote", nil, "[::1]:5678", "::1"},
		{"no remote", nil, "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(req))
		})
	}
}
