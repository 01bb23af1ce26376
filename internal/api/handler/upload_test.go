package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func multipartContext(t *testing.T, filename, contentType string, payload []byte) echo.Context {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return e.NewContext(req, httptest.NewRecorder())
}

func TestStageUpload_SavesFile(t *testing.T) {
	c := multipartContext(t, "cat.jpg", "image/jpeg", []byte("jpeg-bytes"))
	cfg := UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20}

	path, err := stageUpload(c, cfg, true)
	if err != nil {
		t.Fatalf("stageUpload returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("staged file unreadable: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("staged content mismatch: %q", data)
	}
	if !strings.HasSuffix(path, "-cat.jpg") {
		t.Fatalf("unexpected staged name: %s", path)
	}
}

func TestStageUpload_AbsentFile(t *testing.T) {
	cfg := UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20}

	// Optional: absence is not an error.
	c := multipartContext(t, "", "", nil)
	path, err := stageUpload(c, cfg, false)
	if err != nil || path != "" {
		t.Fatalf("optional absent file: path=%q err=%v", path, err)
	}

	// Required: absence is a 400.
	c = multipartContext(t, "", "", nil)
	_, err = stageUpload(c, cfg, true)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestStageUpload_RejectsNonImage(t *testing.T) {
	c := multipartContext(t, "notes.txt", "text/plain", []byte("hello"))
	cfg := UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20}

	_, err := stageUpload(c, cfg, true)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestStageUpload_RejectsOversize(t *testing.T) {
	c := multipartContext(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte("x"), 64))
	cfg := UploadConfig{Dir: t.TempDir(), MaxBytes: 16}

	_, err := stageUpload(c, cfg, true)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("../../etc/passwd"); got != "passwd" {
		t.Fatalf("path components not stripped: %q", got)
	}
	if got := sanitizeFilename("photo.png"); got != "photo.png" {
		t.Fatalf("plain name mangled: %q", got)
	}
}
