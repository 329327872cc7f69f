package storage

import (
	"context"
	"fmt"
	"time"
)

// Store is the blob gateway: opaque, publicly readable objects addressed by
// key. Upload returns the public URL of the stored object.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// ObjectKey builds the bucket key for an uploaded project image:
// projects/{projectId}/{epochMillis}-{originalName}.
func ObjectKey(projectID uint, filename string) string {
	return fmt.Sprintf("projects/%d/%d-%s", projectID, time.Now().UnixMilli(), filename)
}
