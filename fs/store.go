// Package fs provides file access for catalog documents and reports.
package fs

import (
	"os"
	"path/filepath"
)

// ReadCatalog returns the full text of a catalog file.
func ReadCatalog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// RewriteCatalog replaces a catalog file's contents atomically. The new
// text is written to a sibling temp file and renamed over the original,
// so a crash mid-write never leaves a half-stripped catalog behind.
func RewriteCatalog(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// WriteReport writes the validation report to path.
func WriteReport(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
