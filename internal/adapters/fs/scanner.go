// Package fs provides the file system scanner used by the validation checks.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/packlint/internal/core/ports"
)

// Scanner implements ports.Scanner on the host file system.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

var _ ports.Scanner = (*Scanner)(nil)

// Exists reports whether the path exists.
func (s *Scanner) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDirectory reports whether the path exists and is a directory.
func (s *Scanner) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsEmptyDir reports whether the path is a directory with no entries.
func (s *Scanner) IsEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) == 0
}

// FilesRecursive returns every path under dir, depth-first in lexical
// order. The dir itself is not included. A missing dir yields nil.
func (s *Scanner) FilesRecursive(dir string) []string {
	var paths []string
	_ = filepath.WalkDir(dir, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable roots are treated as empty.
			return nil
		}
		if path == dir {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths
}

// FilesNonRecursive returns the immediate children of dir in lexical order.
// A missing dir yields nil.
func (s *Scanner) FilesNonRecursive(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths
}
