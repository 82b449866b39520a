// ABOUTME: File-backed structured logger for TUI runs
// ABOUTME: Keeps zerolog output away from the terminal the TUI is drawing on

package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu      sync.Mutex
	logFile *os.File
	log     = zerolog.Nop()
)

// Init opens the debug log in the given config directory. An empty
// directory disables logging; the returned logger is then a no-op.
func Init(configDir, level string) (zerolog.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		log = zerolog.Nop()
		return log, nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return zerolog.Nop(), err
	}

	f, err := os.OpenFile(filepath.Join(configDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), err
	}

	logFile = f
	log = zerolog.New(f).Level(parseLevel(level)).With().Timestamp().Logger()
	return log, nil
}

// Get returns the current logger. No-op until Init succeeds.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	log = zerolog.Nop()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
