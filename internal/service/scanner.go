package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
	"github.com/gbabichev/Simple-Renamer/internal/port"
)

// ScannerService resolves a directory into a working set and batch scope.
type ScannerService struct {
	fs  port.FileSystem
	log *slog.Logger
}

func NewScannerService(fs port.FileSystem) *ScannerService {
	return &ScannerService{fs: fs, log: slog.Default()}
}

// Resolve classifies the non-hidden immediate children of path. A folder of
// regular files is a Files batch; a folder of subdirectories is a Folders
// batch, or — with processSubfolders — a Files batch flattened from each
// subfolder's immediate files, tagged with their owning subfolder. A
// top-level mix of files and subdirectories is unsupported.
func (s *ScannerService) Resolve(path string, processSubfolders bool) ([]domain.Item, domain.BatchScope, error) {
	entries, err := s.fs.ReadDir(path)
	if err != nil {
		return nil, domain.ScopeEmpty, err
	}

	var files, dirs []os.DirEntry
	for _, entry := range entries {
		if hidden(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	switch {
	case len(files) == 0 && len(dirs) == 0:
		return nil, domain.ScopeEmpty, nil

	case len(files) > 0 && len(dirs) > 0:
		return nil, domain.ScopeEmpty, fmt.Errorf("%w: %s", domain.ErrMixedContent, path)

	case len(files) > 0:
		items := fileItems(path, files, "")
		domain.SortItems(items)
		s.log.Info("directory scanned", "path", path, "scope", domain.ScopeFiles.String(), "item_count", len(items))
		return items, domain.ScopeFiles, nil

	case !processSubfolders:
		items := make([]domain.Item, 0, len(dirs))
		for _, d := range dirs {
			items = append(items, domain.Item{
				Name:  d.Name(),
				Path:  filepath.Join(path, d.Name()),
				IsDir: true,
			})
		}
		domain.SortItems(items)
		s.log.Info("directory scanned", "path", path, "scope", domain.ScopeFolders.String(), "item_count", len(items))
		return items, domain.ScopeFolders, nil

	default:
		// Flatten each subfolder's immediate regular files, each item
		// tagged with its owning subfolder so numbering restarts per
		// group. Scope is reported as Files for downstream numbering.
		items, err := s.flattenSubfolders(path, dirs)
		if err != nil {
			return nil, domain.ScopeEmpty, err
		}
		s.log.Info("subfolders flattened", "path", path, "group_count", len(dirs), "item_count", len(items))
		return items, domain.ScopeFiles, nil
	}
}

func (s *ScannerService) flattenSubfolders(path string, dirs []os.DirEntry) ([]domain.Item, error) {
	subdirs := make([]string, 0, len(dirs))
	for _, d := range dirs {
		subdirs = append(subdirs, filepath.Join(path, d.Name()))
	}
	domain.SortNames(subdirs)

	var items []domain.Item
	for _, sub := range subdirs {
		entries, err := s.fs.ReadDir(sub)
		if err != nil {
			return nil, err
		}
		var files []os.DirEntry
		for _, entry := range entries {
			if hidden(entry.Name()) || entry.IsDir() {
				continue
			}
			files = append(files, entry)
		}
		group := fileItems(sub, files, sub)
		domain.SortItems(group)
		items = append(items, group...)
	}
	return items, nil
}

func fileItems(dir string, entries []os.DirEntry, group string) []domain.Item {
	items := make([]domain.Item, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		items = append(items, domain.Item{
			Name:      name,
			Path:      filepath.Join(dir, name),
			Extension: filepath.Ext(name),
			Group:     group,
		})
	}
	return items
}

// hidden reports dot-prefixed entries, matching what the directory listers
// on the supported platforms skip.
func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
