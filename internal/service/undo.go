package service

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
	"github.com/gbabichev/Simple-Renamer/internal/port"
)

// UndoLog holds the (original, final) pairs of the most recently executed
// batch. It is replaced wholesale after every execution that renamed
// anything and cleared by Undo, making undo a one-shot operation covering
// only the latest batch.
type UndoLog struct {
	mu      sync.Mutex
	fs      port.FileSystem
	log     *slog.Logger
	records []domain.UndoRecord
}

func NewUndoLog(fs port.FileSystem) *UndoLog {
	return &UndoLog{fs: fs, log: slog.Default()}
}

// Replace swaps in the records of a new batch, discarding the previous log.
func (u *UndoLog) Replace(records []domain.UndoRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = records
}

func (u *UndoLog) CanUndo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.records) > 0
}

func (u *UndoLog) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.records)
}

// Undo moves every recorded final path back to its original path, in batch
// execution order. Like execution, undo is two-phase: every final name is
// staged to a temporary name first, so a batch whose final names overlap
// its originals (a plain renumbering) round-trips cleanly. An original
// still occupied after staging was recreated externally and is retargeted
// with an _undoN suffix instead of overwritten. The pass is best-effort: a
// failed reversal is recorded and the remaining records are still
// attempted. The log is cleared regardless of partial failure.
func (u *UndoLog) Undo() domain.UndoResult {
	u.mu.Lock()
	records := u.records
	u.records = nil
	u.mu.Unlock()

	var result domain.UndoResult

	// Phase 1: stage each final path to a collision-free temporary name.
	type stagedRecord struct {
		rec  domain.UndoRecord
		temp string
	}
	staged := make([]stagedRecord, 0, len(records))
	for _, rec := range records {
		temp := u.stagingPath(rec)
		if err := u.fs.Rename(rec.FinalPath, temp); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("failed to restore %q: %v", rec.FinalName, err))
			continue
		}
		staged = append(staged, stagedRecord{rec: rec, temp: temp})
	}

	// Phase 2: move staged entries to their original paths, in recorded
	// order. The batch's own final names are all out of the way now, so
	// an occupied original means genuine external recreation.
	for _, st := range staged {
		target := st.rec.OriginalPath
		if u.fs.Exists(target) {
			target = u.freeUndoPath(st.rec.OriginalPath, st.rec.IsDir)
			result.Retargeted = append(result.Retargeted, target)
			u.log.Warn("undo target occupied, restoring to alternate name",
				"original", st.rec.OriginalPath,
				"target", target)
		}

		if err := u.fs.Rename(st.temp, target); err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("failed to restore %q: %v", st.rec.FinalName, err))
			continue
		}
		result.Restored++
	}

	u.log.Info("undo finished",
		"restored", result.Restored,
		"retargeted", len(result.Retargeted),
		"failed", len(result.Errors))
	return result
}

// stagingPath generates a temporary name no existing entry occupies,
// preserving the original extension for files.
func (u *UndoLog) stagingPath(rec domain.UndoRecord) string {
	dir := filepath.Dir(rec.FinalPath)
	ext := ""
	if !rec.IsDir {
		ext = filepath.Ext(rec.OriginalName)
	}
	for {
		candidate := filepath.Join(dir, uuid.NewString()+ext)
		if !u.fs.Exists(candidate) {
			return candidate
		}
	}
}

// freeUndoPath appends _undoN before the extension, incrementing N until no
// existing entry occupies the candidate.
func (u *UndoLog) freeUndoPath(path string, isDir bool) string {
	ext := ""
	stem := path
	if !isDir {
		ext = filepath.Ext(path)
		stem = strings.TrimSuffix(path, ext)
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_undo%d%s", stem, n, ext)
		if !u.fs.Exists(candidate) {
			return candidate
		}
	}
}
