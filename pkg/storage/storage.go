package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
)

// AssetExt is the only extension that makes it into a Snapshot.
const AssetExt = ".png"

type Storage struct{}

// Snapshot is the set of lower-cased asset filenames found in a directory.
type Snapshot map[string]struct{}

// NewSnapshot builds a Snapshot from raw filenames, lower-casing each one.
func NewSnapshot(names ...string) Snapshot {
	s := make(Snapshot, len(names))
	for _, n := range names {
		s[strings.ToLower(n)] = struct{}{}
	}
	return s
}

// Has reports whether name is in the snapshot, ignoring case.
func (s Snapshot) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Sorted returns the snapshot's names in lexicographic order.
func (s Snapshot) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR), errors.Is(err, syscall.ELOOP):
		return false
	}
	return true
}

// Exists reports whether path exists. A path under a regular file or behind a
// symlink loop does not exist. Permission errors count as existing, so they
// surface later as an empty snapshot rather than a not-found report.
func (s *Storage) Exists(path string) bool {
	return fileExists(path)
}

// ScanPNG lists the regular files directly under dir whose extension is .png
// (any case). It never fails: an unreadable directory gives an empty snapshot
// and unreadable entries are skipped.
func (s *Storage) ScanPNG(dir string) Snapshot {
	snap := make(Snapshot)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return snap
	}
	for _, e := range entries {
		name := e.Name()
		if !isRegular(dir, e) {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != AssetExt {
			continue
		}
		snap[strings.ToLower(name)] = struct{}{}
	}
	return snap
}

// isRegular follows symlinks, so a link to a regular file counts as one.
func isRegular(dir string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// FindFold returns the path of the regular file directly under dir whose name
// matches name ignoring case.
func (s *Storage) FindFold(dir, name string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name(), name) && isRegular(dir, e) {
			return filepath.Join(dir, e.Name()), true
		}
	}
	return "", false
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
