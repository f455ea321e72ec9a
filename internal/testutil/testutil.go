package testutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockDirEntry implements os.DirEntry for testing.
type MockDirEntry struct {
	EntryName string
	Dir       bool
}

func (m *MockDirEntry) Name() string { return m.EntryName }
func (m *MockDirEntry) IsDir() bool  { return m.Dir }
func (m *MockDirEntry) Type() fs.FileMode {
	if m.Dir {
		return fs.ModeDir
	}
	return 0
}
func (m *MockDirEntry) Info() (os.FileInfo, error) {
	return &MockFileInfo{FileName: m.EntryName, Dir: m.Dir}, nil
}

// MockFileInfo implements os.FileInfo for testing.
type MockFileInfo struct {
	FileName string
	FileSize int64
	Dir      bool
}

func (m *MockFileInfo) Name() string { return m.FileName }
func (m *MockFileInfo) Size() int64  { return m.FileSize }
func (m *MockFileInfo) Mode() fs.FileMode {
	if m.Dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *MockFileInfo) IsDir() bool        { return m.Dir }
func (m *MockFileInfo) Sys() any           { return nil }

// File creates a MockDirEntry for a regular file.
func File(name string) *MockDirEntry {
	return &MockDirEntry{EntryName: name}
}

// Dir creates a MockDirEntry for a directory.
func Dir(name string) *MockDirEntry {
	return &MockDirEntry{EntryName: name, Dir: true}
}

// MemFS is an in-memory port.FileSystem for exercising rename flows without
// touching disk. Paths use the OS separator convention of filepath.Join.
type MemFS struct {
	mu      sync.Mutex
	entries map[string]bool // path → isDir
	// FailRename, when set, is consulted before every rename and can
	// inject a failure for a specific move.
	FailRename func(oldpath, newpath string) error
	// Renames records every successful move in order.
	Renames [][2]string
}

func NewMemFS() *MemFS {
	return &MemFS{entries: make(map[string]bool)}
}

// AddFile registers a regular file and its ancestor directories.
func (m *MemFS) AddFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = false
	m.addParentsLocked(path)
}

// AddDir registers a directory and its ancestor directories.
func (m *MemFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = true
	m.addParentsLocked(path)
}

func (m *MemFS) addParentsLocked(path string) {
	for dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		m.entries[dir] = true
	}
}

func (m *MemFS) ReadDir(path string) ([]os.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if isDir, ok := m.entries[path]; !ok || !isDir {
		return nil, fmt.Errorf("readdir %s: no such directory", path)
	}

	prefix := path + string(filepath.Separator)
	var names []string
	children := make(map[string]bool)
	for p, isDir := range m.entries {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if strings.Contains(rest, string(filepath.Separator)) {
			continue
		}
		names = append(names, rest)
		children[rest] = isDir
	}
	sort.Strings(names)

	out := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		out = append(out, &MockDirEntry{EntryName: name, Dir: children[name]})
	}
	return out, nil
}

func (m *MemFS) Rename(oldpath, newpath string) error {
	if m.FailRename != nil {
		if err := m.FailRename(oldpath, newpath); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	isDir, ok := m.entries[oldpath]
	if !ok {
		return fmt.Errorf("rename %s: no such file", oldpath)
	}
	if _, taken := m.entries[newpath]; taken {
		return fmt.Errorf("rename %s: destination %s already exists", oldpath, newpath)
	}

	delete(m.entries, oldpath)
	m.entries[newpath] = isDir

	if isDir {
		oldPrefix := oldpath + string(filepath.Separator)
		newPrefix := newpath + string(filepath.Separator)
		moved := make(map[string]bool)
		for p, d := range m.entries {
			if strings.HasPrefix(p, oldPrefix) {
				moved[newPrefix+strings.TrimPrefix(p, oldPrefix)] = d
				delete(m.entries, p)
			}
		}
		for p, d := range moved {
			m.entries[p] = d
		}
	}

	m.Renames = append(m.Renames, [2]string{oldpath, newpath})
	return nil
}

func (m *MemFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[path]
	return ok
}

// Paths returns every registered path, sorted, for assertions.
func (m *MemFS) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for p := range m.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
