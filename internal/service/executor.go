package service

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
	"github.com/gbabichev/Simple-Renamer/internal/port"
)

// ExecutorService applies rename plans with a two-phase temp-then-final
// protocol, so plans whose final names are a permutation of the original
// names (swaps, renumbered sequences) never collide with an original that
// hasn't moved yet.
type ExecutorService struct {
	fs  port.FileSystem
	log *slog.Logger
}

func NewExecutorService(fs port.FileSystem) *ExecutorService {
	return &ExecutorService{fs: fs, log: slog.Default()}
}

// Execute processes the plan's groups strictly in order. Groups already
// completed when a later group fails stay committed and keep their undo
// records; execution stops at the first group failure. The returned records
// cover exactly the items that reached their final names in fully completed
// groups.
func (s *ExecutorService) Execute(plan *domain.RenamePlan) (domain.ExecuteReport, []domain.UndoRecord, error) {
	var report domain.ExecuteReport
	var records []domain.UndoRecord

	for gi := range plan.Groups {
		renamed, groupRecords, stranded, err := s.executeGroup(&plan.Groups[gi], plan)
		if err != nil {
			report.Stranded = stranded
			s.log.Error("batch failed",
				"group", plan.Groups[gi].Key,
				"stranded_count", len(stranded),
				"error", err)
			return report, records, err
		}
		report.Renamed = append(report.Renamed, renamed...)
		records = append(records, groupRecords...)
	}

	s.log.Info("batch executed", "renamed_count", len(report.Renamed))
	return report, records, nil
}

type stagedItem struct {
	item     domain.Item
	tempPath string
}

// executeGroup runs the two-phase state machine for one group. A failure in
// either phase aborts the group immediately; entries already moved to temp
// names stay there and are reported as stranded. Partially executed groups
// contribute no undo records.
func (s *ExecutorService) executeGroup(g *domain.PlanGroup, plan *domain.RenamePlan) (renamed []domain.Item, records []domain.UndoRecord, stranded []string, err error) {
	// Numbering is assigned from the on-disk names as they are now, not
	// from the plan's cached order. If nothing changed since preview the
	// two agree; external mutation between preview and execution is an
	// accepted race.
	items := slices.Clone(g.Items)
	slices.SortStableFunc(items, func(a, b domain.Item) int {
		return domain.Compare(a.Name, b.Name)
	})

	isFile := plan.Scope == domain.ScopeFiles

	// Phase 1: stage every item to a collision-free temporary name.
	staged := make([]stagedItem, 0, len(items))
	for _, it := range items {
		temp := s.stagingPath(filepath.Dir(it.Path), it.Extension, isFile)
		if moveErr := s.fs.Rename(it.Path, temp); moveErr != nil {
			for _, st := range staged {
				stranded = append(stranded, st.tempPath)
			}
			return nil, nil, stranded, &domain.MoveError{Name: it.Name, Phase: domain.PhaseStage, Err: moveErr}
		}
		staged = append(staged, stagedItem{item: it, tempPath: temp})
	}

	// Phase 2: finalize in the same order with the group's numbering.
	tmpl := plan.Template
	for i, st := range staged {
		finalName := tmpl.Name(i, st.item.Extension, isFile)
		finalPath := filepath.Join(filepath.Dir(st.item.Path), finalName)
		if moveErr := s.fs.Rename(st.tempPath, finalPath); moveErr != nil {
			for _, rest := range staged[i:] {
				stranded = append(stranded, rest.tempPath)
			}
			return nil, nil, stranded, &domain.MoveError{Name: st.item.Name, Phase: domain.PhaseFinalize, Err: moveErr}
		}

		records = append(records, domain.UndoRecord{
			OriginalPath: st.item.Path,
			FinalPath:    finalPath,
			OriginalName: st.item.Name,
			FinalName:    finalName,
			IsDir:        st.item.IsDir,
		})

		done := st.item
		done.Name = finalName
		done.Path = finalPath
		done.ProposedName = finalName
		renamed = append(renamed, done)
	}

	return renamed, records, nil, nil
}

// stagingPath generates a temporary name no existing entry occupies,
// re-probing on the vanishingly rare token collision. Files keep their
// extension at the staging name.
func (s *ExecutorService) stagingPath(dir, ext string, isFile bool) string {
	for {
		name := uuid.NewString()
		if isFile && ext != "" {
			name += ext
		}
		candidate := filepath.Join(dir, name)
		if !s.fs.Exists(candidate) {
			return candidate
		}
	}
}
