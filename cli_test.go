package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the root command with fresh flag state and captured output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagTemplate, flagSubfolders, flagFilter, flagYes, flagVerbose = "", false, "", false, false

	cmd := buildRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_TemplateFlag(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("missing template is rejected", func(t *testing.T) {
		if _, err := runCLI(t, "preview", dir); err == nil {
			t.Fatal("want an error when --template is absent")
		}
	})

	t.Run("blank template is rejected", func(t *testing.T) {
		if _, err := runCLI(t, "preview", dir, "--template", "  "); err == nil {
			t.Fatal("want an error for a blank --template")
		}
	})

	t.Run("rename refuses a blank template", func(t *testing.T) {
		if _, err := runCLI(t, "rename", dir, "--template", "", "--yes"); err == nil {
			t.Fatal("want an error for a blank --template")
		}
		if names, _ := os.ReadDir(dir); len(names) != 1 || names[0].Name() != "a.txt" {
			t.Error("nothing may be renamed when the template is rejected")
		}
	})

	t.Run("preview runs with a template", func(t *testing.T) {
		out, err := runCLI(t, "preview", dir, "--template", "Doc")
		if err != nil {
			t.Fatalf("preview: %v", err)
		}
		if !strings.Contains(out, "Scope: files") || !strings.Contains(out, "Doc1") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})
}
