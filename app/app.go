package app

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
	"github.com/gbabichev/Simple-Renamer/internal/port"
	"github.com/gbabichev/Simple-Renamer/internal/service"
)

// Option configures the App.
type Option func(*App)

// WithLogger sets a custom logger for the App.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// App is the renaming engine's caller-facing surface. Resolve and plan run
// synchronously on the caller's goroutine; Execute runs on a worker and
// reports through a channel. Only one batch may execute at a time.
type App struct {
	mu       sync.Mutex
	scoper   port.AccessScoper
	scanner  port.Scoper
	filter   port.PatternFilter
	planner  port.Planner
	executor port.Executor
	undo     *service.UndoLog
	logger   *slog.Logger

	state     State
	executing bool
	dir       string
	cfg       Config
	scope     domain.BatchScope
	plan      *domain.RenamePlan
}

// New composes the engine from its injected collaborators.
func New(scoper port.AccessScoper, scanner port.Scoper, filter port.PatternFilter, planner port.Planner, executor port.Executor, undo *service.UndoLog, opts ...Option) *App {
	a := &App{
		scoper:   scoper,
		scanner:  scanner,
		filter:   filter,
		planner:  planner,
		executor: executor,
		undo:     undo,
		logger:   slog.Default(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Resolve scans dir, classifies its scope, applies the include filter, and
// computes the rename plan. On success the app is Ready; on failure it is
// Failed and the previous plan is discarded either way.
func (a *App) Resolve(dir string, cfg Config) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.executing {
		return domain.ErrExecutionInFlight
	}
	a.state = StatePlanning
	a.dir = dir
	a.cfg = cfg
	a.plan = nil

	release, err := a.scoper.Begin(dir)
	if err != nil {
		a.state = StateFailed
		return fmt.Errorf("%w: %s", domain.ErrAccessDenied, err)
	}
	defer release()

	items, scope, err := a.scanner.Resolve(dir, cfg.ProcessSubfolders)
	if err != nil {
		a.state = StateFailed
		return err
	}

	if cfg.Filter != "" {
		items, err = a.filter.MatchItems(items, cfg.Filter)
		if err != nil {
			a.state = StateFailed
			return err
		}
	}

	a.scope = scope
	a.plan = a.planner.Plan(items, scope, cfg.Template, cfg.ProcessSubfolders)
	a.state = StateReady
	a.logger.Info("plan ready",
		"path", dir,
		"scope", scope.String(),
		"item_count", a.plan.Len())
	return nil
}

// State returns the current lifecycle state.
func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Scope returns the classification of the current working set.
func (a *App) Scope() domain.BatchScope {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scope
}

// PlanPreview returns the current plan as preview rows, or nil when no plan
// is ready.
func (a *App) PlanPreview() []domain.PlanEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.plan == nil {
		return nil
	}
	return a.plan.Entries()
}

// CanUndo reports whether an undo log from a previous batch is available.
func (a *App) CanUndo() bool {
	return a.undo.CanUndo()
}

// ExecuteOutcome is delivered once per Execute call when the batch worker
// finishes.
type ExecuteOutcome struct {
	Report domain.ExecuteReport
	Err    error
}

// Execute applies the current plan on a worker goroutine and returns a
// channel that delivers the single outcome. A second call while a batch is
// in flight fails with ErrExecutionInFlight; a call without a ready plan
// fails with ErrNoPlan. Cancellation mid-batch is not supported.
func (a *App) Execute() (<-chan ExecuteOutcome, error) {
	a.mu.Lock()
	if a.executing {
		a.mu.Unlock()
		return nil, domain.ErrExecutionInFlight
	}
	if a.state != StateReady || a.plan == nil {
		a.mu.Unlock()
		return nil, domain.ErrNoPlan
	}
	a.executing = true
	a.state = StateExecuting
	plan := a.plan
	dir := a.dir
	a.mu.Unlock()

	ch := make(chan ExecuteOutcome, 1)
	go func() {
		outcome := a.runBatch(dir, plan)

		a.mu.Lock()
		a.executing = false
		if outcome.Err != nil {
			a.state = StateFailed
		} else {
			a.state = StateDone
			a.plan = nil
		}
		a.mu.Unlock()

		ch <- outcome
		close(ch)
	}()
	return ch, nil
}

func (a *App) runBatch(dir string, plan *domain.RenamePlan) ExecuteOutcome {
	release, err := a.scoper.Begin(dir)
	if err != nil {
		return ExecuteOutcome{Err: fmt.Errorf("%w: %s", domain.ErrAccessDenied, err)}
	}
	defer release()

	report, records, err := a.executor.Execute(plan)

	// The log is replaced by whatever completed. A batch that moved
	// anything on disk invalidates the previous log even when every move
	// was later stranded; only a failure before the first move leaves it
	// intact.
	moved := err == nil || len(records) > 0 || len(report.Renamed) > 0 || len(report.Stranded) > 0
	if moved {
		a.undo.Replace(records)
	}
	return ExecuteOutcome{Report: report, Err: err}
}

// Undo reverses the most recent batch, best-effort, consuming the log.
func (a *App) Undo() (domain.UndoResult, error) {
	a.mu.Lock()
	if a.executing {
		a.mu.Unlock()
		return domain.UndoResult{}, domain.ErrExecutionInFlight
	}
	dir := a.dir
	a.mu.Unlock()

	if !a.undo.CanUndo() {
		return domain.UndoResult{}, domain.ErrNothingToUndo
	}

	release, err := a.scoper.Begin(dir)
	if err != nil {
		return domain.UndoResult{}, fmt.Errorf("%w: %s", domain.ErrAccessDenied, err)
	}
	defer release()

	return a.undo.Undo(), nil
}
