package app

// State is the engine lifecycle as the caller sees it. Transitions:
// Idle → Planning → Ready → Executing → Done or Failed; Resolve may be
// called again from any non-executing state.
type State int

const (
	StateIdle State = iota
	StatePlanning
	StateReady
	StateExecuting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePlanning:
		return "planning"
	case StateReady:
		return "ready"
	case StateExecuting:
		return "executing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Config carries the engine-relevant settings for one batch. Persisted
// defaults (stored templates and the like) are the caller's concern.
type Config struct {
	// Template names the batch, e.g. "Photo01".
	Template string
	// ProcessSubfolders flattens subfolder contents into per-subfolder
	// groups with independent numbering.
	ProcessSubfolders bool
	// Filter optionally narrows the working set by filename pattern.
	// Shortcuts like [number] and [alpha] are allowed.
	Filter string
}
