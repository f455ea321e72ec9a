package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListDirectory     = errors.New("failed to list directory")
	ErrMixedContent      = errors.New("folder contains both files and subfolders")
	ErrAccessDenied      = errors.New("access to folder was denied")
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrNoPlan            = errors.New("no rename plan prepared")
	ErrExecutionInFlight = errors.New("a rename batch is already executing")
	ErrNothingToUndo     = errors.New("nothing to undo")
)

// Phase names the stage of execution a move belongs to.
type Phase string

const (
	PhaseStage    Phase = "stage"
	PhaseFinalize Phase = "finalize"
)

// MoveError reports a single failed move with the item it affected. A move
// failure is fatal to its group; already-applied moves are not reverted.
type MoveError struct {
	Name  string
	Phase Phase
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("failed to rename %q (%s): %v", e.Name, e.Phase, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
