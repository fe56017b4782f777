// Package storage persists uploaded photos. Records only keep the stored
// object name returned by Save.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store saves an uploaded file and returns the name it was stored under.
type Store interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// ObjectName builds a collision-free name: "<timestamp>-<8 hex>-<clean name>".
func ObjectName(original string, now time.Time) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s-%s", now.Format("20060102-150405"), id, sanitizeFilename(original))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "upload"
	}
	return out
}
