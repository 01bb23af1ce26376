package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// uploadField is the multipart form field carrying the image file.
const uploadField = "image"

// UploadConfig controls inbound file staging.
type UploadConfig struct {
	// Dir is the local staging directory.
	Dir string
	// MaxBytes caps the accepted file size.
	MaxBytes int64
}

// stageUpload saves the request's image file into the staging directory and
// returns its path. required=false reports an absent file as ("", nil); the
// orchestrator decides whether that is an error. Only image/* content is
// accepted.
func stageUpload(c echo.Context, cfg UploadConfig, required bool) (string, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		if required {
			return "", echo.NewHTTPError(http.StatusBadRequest, "image file is required")
		}
		return "", nil
	}

	if cfg.MaxBytes > 0 && fh.Size > cfg.MaxBytes {
		return "", echo.NewHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("image exceeds %d bytes", cfg.MaxBytes))
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", echo.NewHTTPError(http.StatusBadRequest, "unsupported file type")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(fh.Filename))
	path := filepath.Join(cfg.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("stage upload: %w", err)
	}

	return path, nil
}

// sanitizeFilename strips any path components from a client-supplied name.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, string(os.PathSeparator), "-")
}
