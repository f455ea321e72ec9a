package domain

// BatchScope classifies what a scanned directory offers for renaming.
type BatchScope int

const (
	// ScopeEmpty means the directory has no renameable content.
	ScopeEmpty BatchScope = iota
	// ScopeFiles means the batch renames regular files. Extensions are
	// preserved and per-subfolder numbering may apply.
	ScopeFiles
	// ScopeFolders means the batch renames subdirectories. No extension
	// handling, always a single flat group.
	ScopeFolders
)

func (s BatchScope) String() string {
	switch s {
	case ScopeFiles:
		return "files"
	case ScopeFolders:
		return "folders"
	default:
		return "empty"
	}
}

// Item is one file or folder subject to renaming.
type Item struct {
	Name      string // current on-disk name
	Path      string // absolute location, owned by the file system
	Extension string // ".jpg" etc. for files, "" for folders
	IsDir     bool
	// Group is the absolute path of the subfolder this item was flattened
	// from when "process subfolder contents" is active. Empty means the
	// item is renamed in its own containing folder. A plan's items either
	// all carry a group or none do.
	Group string
	// ProposedName is recomputed on every plan and never persisted.
	ProposedName string
}

// RenamePlan is an ordered set of items with proposed names, partitioned
// into groups that are numbered independently. A flat batch is a single
// group with an empty key.
type RenamePlan struct {
	Scope    BatchScope
	Template Template
	Groups   []PlanGroup
}

// PlanGroup holds one group's items in application order.
type PlanGroup struct {
	Key   string // owning subfolder path; "" for a flat batch
	Items []Item
}

// Len returns the total number of items across all groups.
func (p *RenamePlan) Len() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Items)
	}
	return n
}

// PlanEntry is one row of a plan preview.
type PlanEntry struct {
	Item    Item
	Group   string
	NoOp    bool // proposed name equals the current name
	OldDiff []DiffSegment
	NewDiff []DiffSegment
}

// Entries builds preview rows for the whole plan, including the character
// diff between current and proposed names.
func (p *RenamePlan) Entries() []PlanEntry {
	entries := make([]PlanEntry, 0, p.Len())
	for _, g := range p.Groups {
		for _, it := range g.Items {
			oldDiff, newDiff := RenameDiff(it.Name, it.ProposedName)
			entries = append(entries, PlanEntry{
				Item:    it,
				Group:   g.Key,
				NoOp:    it.Name == it.ProposedName,
				OldDiff: oldDiff,
				NewDiff: newDiff,
			})
		}
	}
	return entries
}

// UndoRecord is one reversible rename: where an item was and where the last
// batch put it. Records are valid until the next successful batch replaces
// the log or an undo call consumes them.
type UndoRecord struct {
	OriginalPath string
	FinalPath    string
	OriginalName string
	FinalName    string
	IsDir        bool
}

// ExecuteReport describes what a batch execution actually changed.
type ExecuteReport struct {
	// Renamed holds the items that reached their final names, updated to
	// their new locations.
	Renamed []Item
	// Stranded lists paths left at staging names after a failure. These
	// need user attention; the engine never rolls them back.
	Stranded []string
}

// UndoResult describes a best-effort undo pass.
type UndoResult struct {
	Restored int
	// Retargeted lists destinations that had to be disambiguated with an
	// _undoN suffix because the original path was occupied again.
	Retargeted []string
	// Errors holds one message per failed reversal; reversals after a
	// failure are still attempted.
	Errors []string
}
