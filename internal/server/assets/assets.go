// Package assets stores uploaded photos and hands back opaque references.
// References are resolved outside this core: disk-stored files are served
// from the uploads route, S3-stored ones by whatever fronts the bucket.
package assets

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Store persists an uploaded file and returns its stored-asset reference.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// storageKey builds a dated, collision-free key for an upload, keeping the
// original file extension (ext includes the leading dot, or is empty).
func storageKey(ext string) string {
	d := time.Now()
	return fmt.Sprintf("%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), ext)
}
