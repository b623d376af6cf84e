package util

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// videoExtensions lists recognized video file extensions (lowercase, with
// leading dot).
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".flv":  true,
	".wmv":  true,
	".webm": true,
	".mpeg": true,
	".mpg":  true,
	".m4v":  true,
}

// IsVideoFile reports whether path has a recognized video extension,
// case-insensitively.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// Exists reports whether anything exists at path.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// ListFiles returns the regular files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		// Resolve symlinks via Stat so links to files count as files.
		if IsFile(p) {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files, nil
}

// StripExt returns path without its final extension.
func StripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// EnsureDir creates the directory path if it does not exist.
func EnsureDir(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}
