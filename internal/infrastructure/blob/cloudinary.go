// Package blob implements the remote object store adapter on Cloudinary.
package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/api/metrics"
	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

const defaultCallTimeout = 15 * time.Second

// Config captures the settings for the Cloudinary-backed store.
type Config struct {
	// URL is the cloudinary:// credential URL.
	URL string
	// Folder is the remote folder uploads land in.
	Folder string
	// CallTimeout bounds every remote call. Defaults to 15s.
	CallTimeout time.Duration
}

// Store uploads and deletes image objects in Cloudinary. Every call carries
// a bounded timeout; a timeout is reported as domain.ErrBlobUnavailable and
// never treated as a confirmed upload or delete.
type Store struct {
	cld     *cloudinary.Cloudinary
	folder  string
	timeout time.Duration
	deleter *batchDeleter
	log     zerolog.Logger
}

// NewStore builds a Store from the given configuration.
func NewStore(cfg Config, log zerolog.Logger) (*Store, error) {
	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	s := &Store{
		cld:     cld,
		folder:  cfg.Folder,
		timeout: timeout,
		log:     log,
	}
	s.deleter = newBatchDeleter(s.deleteTolerant, 0)
	return s, nil
}

// deleteTolerant counts an already-missing object as a successful delete;
// batches only care that the object is gone.
func (s *Store) deleteTolerant(ctx context.Context, remoteID string) error {
	if err := s.Delete(ctx, remoteID); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
		return err
	}
	return nil
}

// Upload pushes the file at localPath and returns its remote reference.
func (s *Store) Upload(ctx context.Context, localPath string) (domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		s.log.Error().Err(err).Str("path", localPath).Msg("blob upload failed")
		return domain.Asset{}, fmt.Errorf("%w: upload: %v", domain.ErrBlobUnavailable, err)
	}

	publicID := resp.PublicID
	return domain.Asset{URL: resp.SecureURL, RemoteID: &publicID}, nil
}

// Delete removes one remote object. Cloudinary reports a missing id as a
// "not found" result string rather than an error.
func (s *Store) Delete(ctx context.Context, remoteID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: remoteID})
	if err != nil {
		metrics.BlobDeletesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: destroy %s: %v", domain.ErrBlobUnavailable, remoteID, err)
	}

	switch resp.Result {
	case "ok":
		metrics.BlobDeletesTotal.WithLabelValues("ok").Inc()
		return nil
	case "not found":
		metrics.BlobDeletesTotal.WithLabelValues("not_found").Inc()
		return domain.ErrBlobNotFound
	default:
		metrics.BlobDeletesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: destroy %s: %s", domain.ErrBlobUnavailable, remoteID, resp.Result)
	}
}

// DeleteMany removes a batch of remote objects with per-id outcomes. One
// failing id never aborts the rest of the batch.
func (s *Store) DeleteMany(ctx context.Context, remoteIDs []string) []ports.DeleteOutcome {
	return s.deleter.run(ctx, remoteIDs)
}
