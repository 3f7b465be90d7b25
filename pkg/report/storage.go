package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the original uploaded payloads on disk, laid out as
// <base>/<patient_id>/<report_id><ext>. The rest of the system treats the
// returned paths as opaque.
type FileStore struct {
	base string
}

// NewFileStore roots the store at base.
func NewFileStore(base string) *FileStore {
	return &FileStore{base: base}
}

// extByMIME maps whitelisted MIME types to on-disk extensions.
var extByMIME = map[string]string{
	"application/pdf": ".pdf",
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	"image/heic":      ".heic",
}

// Save writes the payload and returns its path.
func (s *FileStore) Save(patientID, reportID, mimeType string, payload []byte) (string, error) {
	ext := extByMIME[strings.ToLower(mimeType)]
	dir := filepath.Join(s.base, patientID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create patient dir: %w", err)
	}
	path := filepath.Join(dir, reportID+ext)
	if err := os.WriteFile(path, payload, 0o640); err != nil {
		return "", fmt.Errorf("write payload: %w", err)
	}
	return path, nil
}

// Remove deletes a stored payload; used on transaction rollback so a failed
// ingest leaves no orphaned file.
func (s *FileStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove payload: %w", err)
	}
	return nil
}
