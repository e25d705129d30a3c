package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// maxHeaderBytes is generous for a JSON API that never reads cookies.
const maxHeaderBytes = 16 << 10

// New builds the daemon's HTTP server. Connection-level errors that net/http
// would print to stderr go to logger at warn level instead.
func New(addr string, handler http.Handler, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    maxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}
