package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// New opens an append-only log file at path, creating parent directories as
// needed, and returns a logger writing to it plus a close func whose
// lifecycle the caller owns. Nothing is initialized implicitly at package
// load.
func New(path string) (*slog.Logger, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("init logging: create %q: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("init logging: open %q: %w", path, err)
	}

	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, f.Close, nil
}
