package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	srv := New(":9999", http.NotFoundHandler(), nil)

	assert.Equal(t, ":9999", srv.Addr)
	assert.NotNil(t, srv.Handler)
	assert.Positive(t, srv.ReadHeaderTimeout)
	assert.Positive(t, srv.WriteTimeout)
	assert.Positive(t, srv.IdleTimeout)
	assert.Equal(t, maxHeaderBytes, srv.MaxHeaderBytes)
	require.NotNil(t, srv.ErrorLog)
}

func TestNew_ErrorLogUsesLogger(t *testing.T) {
	var buf bytes.Buffer
	srv := New(":0", http.NotFoundHandler(), slog.New(slog.NewJSONHandler(&buf, nil)))

	srv.ErrorLog.Print("http: TLS handshake error")

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "TLS handshake error")
}
