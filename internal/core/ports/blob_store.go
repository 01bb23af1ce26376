package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// DeleteOutcome reports the result of one id within a batched blob delete.
// Err is nil when the object was removed or was already gone.
type DeleteOutcome struct {
	RemoteID string
	Err      error
}

// BlobStore abstracts the remote object store holding uploaded images.
// Calls may block on network I/O; implementations apply a bounded timeout
// and report it as domain.ErrBlobUnavailable, never as a confirmed result.
type BlobStore interface {
	// Upload pushes the file at localPath and returns the remote reference.
	Upload(ctx context.Context, localPath string) (domain.Asset, error)
	// Delete removes one remote object. A missing object is
	// domain.ErrBlobNotFound.
	Delete(ctx context.Context, remoteID string) error
	// DeleteMany removes a batch of remote objects. Each id succeeds or
	// fails independently; one bad id never aborts the rest.
	DeleteMany(ctx context.Context, remoteIDs []string) []DeleteOutcome
}
