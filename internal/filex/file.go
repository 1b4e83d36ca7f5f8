// Package filex contains small filesystem helpers used by the CLI.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions lists the photo formats the profile endpoint accepts.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// EnsureParentDir creates the directory containing path (if any) so that a
// file can be written there.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadImage reads an image file from disk for upload. It rejects files whose
// extension is not a supported photo format before touching the disk.
func ReadImage(path string) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := imageExtensions[ext]; !ok {
		return nil, fmt.Errorf("unsupported image type %q (want jpg, jpeg or png)", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return data, nil
}
