package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

type Config struct {
	Debug bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs the process logger. With Debug set, logs go to stderr
// at debug level; otherwise they are discarded. Stdout stays clean
// either way: it carries only the guess list.
func Setup(cfg Config) {
	h := slog.NewTextHandler(io.Discard, nil)
	if cfg.Debug {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
