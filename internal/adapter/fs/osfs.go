package fs

import (
	"fmt"
	"os"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

// OSFileSystem implements port.FileSystem using the real OS filesystem.
type OSFileSystem struct{}

func (f *OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrListDirectory, err)
	}
	return entries, nil
}

// Rename moves oldpath to newpath, refusing to replace an existing entry.
// os.Rename silently overwrites files on POSIX, so the destination is
// checked first; the window between check and move is the engine's accepted
// best-effort collision avoidance, not a lock.
func (f *OSFileSystem) Rename(oldpath, newpath string) error {
	if _, err := os.Lstat(newpath); err == nil {
		return fmt.Errorf("destination %q already exists", newpath)
	}
	return os.Rename(oldpath, newpath)
}

func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
