package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
	"github.com/gbabichev/Simple-Renamer/internal/testutil"
)

func planFor(t *testing.T, mem *testutil.MemFS, dir, template string, grouped bool) *domain.RenamePlan {
	t.Helper()
	scanner := NewScannerService(mem)
	items, scope, err := scanner.Resolve(dir, grouped)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return NewPlannerService().Plan(items, scope, template, grouped)
}

func TestExecutorService_Execute(t *testing.T) {
	t.Run("renames a flat batch and records undo pairs", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/work")
		for _, name := range []string{"img2.jpg", "img10.jpg", "img1.jpg"} {
			mem.AddFile(filepath.Join("/work", name))
		}

		plan := planFor(t, mem, "/work", "Photo01", false)
		report, records, err := NewExecutorService(mem).Execute(plan)
		if err != nil {
			t.Fatalf("execute: %v", err)
		}

		if len(report.Renamed) != 3 || len(records) != 3 {
			t.Fatalf("got %d renamed, %d records; want 3, 3", len(report.Renamed), len(records))
		}
		for i, want := range []string{"Photo01.jpg", "Photo02.jpg", "Photo03.jpg"} {
			if !mem.Exists(filepath.Join("/work", want)) {
				t.Errorf("missing final file %s", want)
			}
			if records[i].FinalName != want {
				t.Errorf("record %d final %q, want %q", i, records[i].FinalName, want)
			}
		}
		// Natural execution order: img1 -> Photo01, img2 -> Photo02, img10 -> Photo03.
		if records[0].OriginalName != "img1.jpg" || records[2].OriginalName != "img10.jpg" {
			t.Errorf("unexpected numbering order: %+v", records)
		}
	})

	t.Run("final names permuting the originals never collide", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/work")
		// "img0" numbers the batch img0, img1, img2 — the last two
		// coincide with existing originals.
		for _, name := range []string{"img1.jpg", "img2.jpg", "img3.jpg"} {
			mem.AddFile(filepath.Join("/work", name))
		}

		plan := planFor(t, mem, "/work", "img0", false)
		report, _, err := NewExecutorService(mem).Execute(plan)
		if err != nil {
			t.Fatalf("execute: %v", err)
		}
		if len(report.Renamed) != 3 {
			t.Fatalf("got %d renamed, want 3", len(report.Renamed))
		}
		for _, want := range []string{"img0.jpg", "img1.jpg", "img2.jpg"} {
			if !mem.Exists(filepath.Join("/work", want)) {
				t.Errorf("missing final file %s", want)
			}
		}
		if mem.Exists(filepath.Join("/work", "img3.jpg")) {
			t.Error("img3.jpg should have been renamed away")
		}
	})

	t.Run("staging failure aborts the group and strands staged items", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/work")
		for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
			mem.AddFile(filepath.Join("/work", name))
		}
		mem.FailRename = func(oldpath, _ string) error {
			if oldpath == filepath.Join("/work", "b.txt") {
				return fmt.Errorf("device busy")
			}
			return nil
		}

		plan := planFor(t, mem, "/work", "Doc", false)
		report, records, err := NewExecutorService(mem).Execute(plan)

		var moveErr *domain.MoveError
		if !errors.As(err, &moveErr) || moveErr.Phase != domain.PhaseStage {
			t.Fatalf("got err %v, want stage MoveError", err)
		}
		if moveErr.Name != "b.txt" {
			t.Errorf("error names %q, want b.txt", moveErr.Name)
		}
		if len(records) != 0 {
			t.Errorf("partial group produced %d undo records, want 0", len(records))
		}
		// a.txt was staged and stays stranded; c.txt was never touched.
		if len(report.Stranded) != 1 {
			t.Fatalf("got %d stranded, want 1", len(report.Stranded))
		}
		if !mem.Exists(report.Stranded[0]) {
			t.Error("stranded path does not exist")
		}
		if !mem.Exists(filepath.Join("/work", "c.txt")) {
			t.Error("items after the failure must keep their original names")
		}
		// Exactly one move happened: a.txt's staging. The failed move
		// must abort the phase before anything else is attempted.
		if len(mem.Renames) != 1 {
			t.Errorf("got %d moves, want 1", len(mem.Renames))
		}
	})

	t.Run("finalize failure strands remaining temp names", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/work")
		for _, name := range []string{"a.txt", "b.txt"} {
			mem.AddFile(filepath.Join("/work", name))
		}
		mem.FailRename = func(_, newpath string) error {
			if filepath.Base(newpath) == "Doc2.txt" {
				return fmt.Errorf("disk full")
			}
			return nil
		}

		plan := planFor(t, mem, "/work", "Doc", false)
		report, records, err := NewExecutorService(mem).Execute(plan)

		var moveErr *domain.MoveError
		if !errors.As(err, &moveErr) || moveErr.Phase != domain.PhaseFinalize {
			t.Fatalf("got err %v, want finalize MoveError", err)
		}
		if len(records) != 0 {
			t.Errorf("partial group produced %d undo records, want 0", len(records))
		}
		if !mem.Exists(filepath.Join("/work", "Doc1.txt")) {
			t.Error("already-finalized rename must stay in place")
		}
		if len(report.Stranded) != 1 {
			t.Fatalf("got %d stranded, want 1", len(report.Stranded))
		}
	})

	t.Run("completed groups stay committed when a later group fails", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/work")
		alpha := filepath.Join("/work", "Alpha")
		beta := filepath.Join("/work", "Beta")
		gamma := filepath.Join("/work", "Gamma")
		mem.AddFile(filepath.Join(alpha, "one.png"))
		mem.AddFile(filepath.Join(beta, "two.png"))
		mem.AddFile(filepath.Join(gamma, "three.png"))

		mem.FailRename = func(oldpath, _ string) error {
			if oldpath == filepath.Join(beta, "two.png") {
				return fmt.Errorf("access denied")
			}
			return nil
		}

		plan := planFor(t, mem, "/work", "Pic", true)
		report, records, err := NewExecutorService(mem).Execute(plan)
		if err == nil {
			t.Fatal("expected failure in group Beta")
		}

		// Alpha completed before the failure and keeps its record.
		if len(records) != 1 || records[0].OriginalName != "one.png" {
			t.Fatalf("got records %+v, want exactly Alpha's", records)
		}
		if !mem.Exists(filepath.Join(alpha, "Pic1.png")) {
			t.Error("Alpha's rename must stay committed")
		}
		// Gamma comes after the failing group and is never processed.
		if !mem.Exists(filepath.Join(gamma, "three.png")) {
			t.Error("groups after the failure must be untouched")
		}
		if len(report.Renamed) != 1 {
			t.Errorf("got %d renamed, want 1", len(report.Renamed))
		}
	})

	t.Run("staging names keep file extensions", func(t *testing.T) {
		mem := testutil.NewMemFS()
		mem.AddDir("/work")
		mem.AddFile(filepath.Join("/work", "a.jpg"))

		var staged []string
		mem.FailRename = func(_, newpath string) error {
			if !strings.HasPrefix(filepath.Base(newpath), "Pic") {
				staged = append(staged, newpath)
			}
			return nil
		}

		plan := planFor(t, mem, "/work", "Pic", false)
		if _, _, err := NewExecutorService(mem).Execute(plan); err != nil {
			t.Fatalf("execute: %v", err)
		}
		if len(staged) != 1 {
			t.Fatalf("expected one staging move, got %d", len(staged))
		}
		if filepath.Ext(staged[0]) != ".jpg" {
			t.Errorf("staging name %q lost the extension", staged[0])
		}
	})

	t.Run("empty plan succeeds without moves", func(t *testing.T) {
		mem := testutil.NewMemFS()
		plan := &domain.RenamePlan{Scope: domain.ScopeEmpty, Template: domain.ParseTemplate("x")}
		report, records, err := NewExecutorService(mem).Execute(plan)
		if err != nil || len(report.Renamed) != 0 || len(records) != 0 {
			t.Errorf("empty plan must be a no-op, got %v / %+v", err, report)
		}
	})
}
