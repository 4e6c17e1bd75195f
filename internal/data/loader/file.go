package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

func loadFile(ctx context.Context, files fs.FS, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("data loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	// An injected filesystem takes precedence so callers can sandbox file
	// sources the same way fs sources are.
	if files != nil {
		return fs.ReadFile(files, filepath.ToSlash(path))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return data, nil
}
