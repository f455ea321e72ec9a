package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

var (
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	insertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// RenderPreview formats plan rows for terminal display, one group per
// section, with the character diff between current and proposed names
// colored in place.
func RenderPreview(entries []domain.PlanEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("Nothing to rename.")
	}

	var b strings.Builder
	arrow := dimStyle.Render(" -> ")
	lastGroup := "\x00" // sentinel distinct from any real group key
	for _, e := range entries {
		if e.Group != lastGroup {
			if e.Group != "" {
				b.WriteString(groupStyle.Render(filepath.Base(e.Group)+"/") + "\n")
			}
			lastGroup = e.Group
		}
		b.WriteString("  ")
		b.WriteString(renderSegments(e.OldDiff))
		b.WriteString(arrow)
		b.WriteString(renderSegments(e.NewDiff))
		if e.NoOp {
			b.WriteString(dimStyle.Render("  (unchanged)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSegments(segs []domain.DiffSegment) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.Type {
		case domain.DiffDelete:
			b.WriteString(deleteStyle.Render(s.Text))
		case domain.DiffInsert:
			b.WriteString(insertStyle.Render(s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// RenderOutcome formats an execution outcome.
func RenderOutcome(outcome ExecuteOutcome) string {
	var b strings.Builder
	if outcome.Err == nil {
		b.WriteString(okStyle.Render(fmt.Sprintf("Renamed %d items.", len(outcome.Report.Renamed))))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(errStyle.Render("Batch failed: " + outcome.Err.Error()))
	b.WriteString("\n")
	if n := len(outcome.Report.Renamed); n > 0 {
		b.WriteString(fmt.Sprintf("%d items were renamed before the failure and remain renamed.\n", n))
	}
	if len(outcome.Report.Stranded) > 0 {
		b.WriteString(warnStyle.Render("Left at temporary names (needs attention):"))
		b.WriteString("\n")
		for _, p := range outcome.Report.Stranded {
			b.WriteString("  " + p + "\n")
		}
	}
	return b.String()
}

// RenderUndo formats an undo result.
func RenderUndo(result domain.UndoResult) string {
	var b strings.Builder
	b.WriteString(okStyle.Render(fmt.Sprintf("Restored %d items.", result.Restored)))
	b.WriteString("\n")
	for _, p := range result.Retargeted {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Original name was taken; restored to %s", filepath.Base(p))))
		b.WriteString("\n")
	}
	for _, msg := range result.Errors {
		b.WriteString(errStyle.Render(msg))
		b.WriteString("\n")
	}
	return b.String()
}
