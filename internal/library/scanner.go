// Package library finds the files a media tab lists.
package library

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Scanner walks directories recursively and keeps files whose extension is
// in the configured set.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a scanner. A nil logger discards output.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// Scan returns the matching files under dirs as absolute paths, sorted
// across all directories. A path found through more than one directory is
// listed once. Unreadable directories are logged and skipped.
func (s *Scanner) Scan(dirs, extensions []string) []string {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	seen := make(map[string]bool)
	var files []string
	for _, dir := range dirs {
		root, err := filepath.Abs(dir)
		if err != nil {
			s.logger.Warn("Skipping directory", zap.String("dir", dir), zap.Error(err))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				s.logger.Warn("Unreadable path skipped", zap.String("path", path), zap.Error(err))
				if d != nil && d.IsDir() && path != root {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !Matches(path, wanted) || seen[path] {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
		if err != nil {
			s.logger.Warn("Directory scan aborted", zap.String("dir", root), zap.Error(err))
		}
	}

	sort.Strings(files)
	s.logger.Debug("Scan complete",
		zap.Strings("dirs", dirs),
		zap.Strings("extensions", extensions),
		zap.Int("files", len(files)),
	)
	return files
}

// Matches reports whether path has one of the wanted extensions. Keys are
// lowercase and carry no leading dot.
func Matches(path string, wanted map[string]bool) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	return wanted[strings.ToLower(ext)]
}
