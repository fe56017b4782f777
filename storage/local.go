package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Local stores files in a directory that is also served at /uploads/.
type Local struct {
	Dir string
	now func() time.Time
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Local{Dir: dir, now: time.Now}, nil
}

func (l *Local) Save(ctx context.Context, filename, _ string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := ObjectName(filename, l.now())

	dst, err := os.Create(filepath.Join(l.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	return name, nil
}
