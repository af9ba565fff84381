package reactive

import (
	"log/slog"
	"sync/atomic"
)

// DevMode turns dropped writes to disposed storage into warnings.
// Set it once at startup.
var DevMode = false

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for runtime warnings.
// A nil logger restores slog.Default.
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// dropWrite records a write against disposed storage.
func dropWrite(op string, id uint64) {
	if !DevMode {
		return
	}
	log().Warn("reactive: write dropped",
		"op", op,
		"id", id,
		"error", ErrDisposed,
	)
}
