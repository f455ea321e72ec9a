package port

import (
	"os"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

// FileSystem abstracts the file-system operations the engine needs. Rename
// must be an atomic move that fails when the destination already exists;
// the executor's collision avoidance depends on that.
type FileSystem interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Rename(oldpath, newpath string) error
	Exists(path string) bool
}

// AccessScoper brackets file-system access for sandboxed platforms. Begin
// returns a release function that must be called as soon as the operation
// finishes; platforms without scoped access return a no-op release.
type AccessScoper interface {
	Begin(path string) (release func(), err error)
}

// PatternMatcher abstracts pattern matching for the include filter.
type PatternMatcher interface {
	ExpandShortcuts(pattern string) string
	Match(pattern, name string) (bool, error)
}

// Scoper classifies a directory's contents into a working set and scope,
// flattening subfolder contents when processSubfolders is set.
type Scoper interface {
	Resolve(path string, processSubfolders bool) ([]domain.Item, domain.BatchScope, error)
}

// PatternFilter narrows the working set by filename pattern.
type PatternFilter interface {
	MatchItems(items []domain.Item, pattern string) ([]domain.Item, error)
}

// Planner computes proposed names for a working set.
type Planner interface {
	Plan(items []domain.Item, scope domain.BatchScope, template string, grouped bool) *domain.RenamePlan
}

// Executor applies a plan to disk and returns the undo records for
// everything it actually renamed.
type Executor interface {
	Execute(plan *domain.RenamePlan) (domain.ExecuteReport, []domain.UndoRecord, error)
}
