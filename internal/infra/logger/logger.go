// Package logger owns the process-wide structured logger. smtcat runs a
// full-screen TUI, so log output goes to a file under the corpus root
// rather than stderr.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config controls where the log file lives and how verbose it is.
type Config struct {
	// Root is the corpus root, or the working directory when no corpus
	// has been found yet. The file lands in Root/.smtcat/logs/smtcat.log.
	Root  string
	Debug bool
}

type state struct {
	logger  *slog.Logger
	file    *os.File
	path    string
	started time.Time
}

var (
	mu  sync.RWMutex
	cur = state{logger: discardLogger()}
)

// Setup opens the log file in append mode, installs the global logger,
// and returns a cleanup func that closes the file. Until Setup succeeds
// (and again after cleanup) L() returns a logger that discards.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	if root == "" {
		root = "."
	}

	dir := filepath.Join(root, ".smtcat", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, "smtcat.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))

	mu.Lock()
	cur = state{logger: l, file: f, path: path, started: time.Now().UTC()}
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if cur.file != nil {
			cerr = cur.file.Close()
		}
		cur = state{logger: discardLogger()}
		return cerr
	}
	return cleanup, nil
}

// newHandler builds the JSON handler shared by Setup and the discard
// fallback. Timestamps are normalized to UTC so logs from different
// machines collate.
func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

// L returns the current global logger. It is never nil.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.logger
}

// Path returns the open log file's path, or "" before Setup.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}

// InitTime returns when the current log file was opened.
func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return cur.started
}

// IsReady reports whether Setup has installed a file-backed logger.
func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if cur.file == nil || cur.path == "" {
		return errors.New("logger not initialized")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(newHandler(io.Discard, false))
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cur = state{logger: discardLogger()}
}
