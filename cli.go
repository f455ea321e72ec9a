package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gbabichev/Simple-Renamer/app"
	adapterfs "github.com/gbabichev/Simple-Renamer/internal/adapter/fs"
	"github.com/gbabichev/Simple-Renamer/internal/adapter/regex"
	"github.com/gbabichev/Simple-Renamer/internal/service"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagTemplate   string
	flagSubfolders bool
	flagFilter     string
	flagYes        bool
	flagVerbose    bool
)

// newEngine wires the renaming engine against the real filesystem.
func newEngine() *app.App {
	fs := &adapterfs.OSFileSystem{}
	return app.New(
		adapterfs.NopAccessScoper{},
		service.NewScannerService(fs),
		service.NewPatternService(&regex.Engine{}),
		service.NewPlannerService(),
		service.NewExecutorService(fs),
		service.NewUndoLog(fs),
	)
}

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "simple-renamer",
		Version: version,
		Short:   "Batch-rename files or folders from a naming template",
		Long: `simple-renamer renames a folder's contents in natural (Finder-like)
order using a naming template. A trailing digit run in the template sets the
start value and zero-padding: "Photo01" produces Photo01, Photo02, … while
"Track5" produces Track5, Track6, …

A folder of files renames the files (extensions preserved); a folder of
subfolders renames the subfolders, or — with --subfolders — renames each
subfolder's files with numbering restarting per subfolder. Folders mixing
files and subfolders at the top level are not supported.

Renames are applied through a two-phase protocol (stage to temporary names,
then finalize), so a batch whose new names overlap its old names never
overwrites anything. The most recent batch can be undone right after it runs.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flagTemplate, "template", "t", "", "naming template, e.g. \"Photo01\"")
	cmd.PersistentFlags().BoolVarP(&flagSubfolders, "subfolders", "s", false, "rename each subfolder's files, numbering per subfolder")
	cmd.PersistentFlags().StringVarP(&flagFilter, "filter", "f", "", "only include names matching this pattern ([number], [alpha], [word], [any] shortcuts allowed)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
	_ = cmd.MarkPersistentFlagRequired("template")

	cmd.AddCommand(buildPreviewCommand(), buildRenameCommand())
	return cmd
}

func validateTemplate() error {
	if strings.TrimSpace(flagTemplate) == "" {
		return fmt.Errorf("--template must not be empty")
	}
	return nil
}

func engineConfig() app.Config {
	return app.Config{
		Template:          flagTemplate,
		ProcessSubfolders: flagSubfolders,
		Filter:            flagFilter,
	}
}

func buildPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview DIR",
		Short: "Show the rename plan without touching anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTemplate(); err != nil {
				return err
			}
			engine := newEngine()
			if err := engine.Resolve(args[0], engineConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scope: %s\n", engine.Scope())
			fmt.Fprint(cmd.OutOrStdout(), app.RenderPreview(engine.PlanPreview()))
			return nil
		},
	}
}

func buildRenameCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename DIR",
		Short: "Apply the rename plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTemplate(); err != nil {
				return err
			}
			engine := newEngine()
			if err := engine.Resolve(args[0], engineConfig()); err != nil {
				return err
			}

			preview := engine.PlanPreview()
			fmt.Fprint(cmd.OutOrStdout(), app.RenderPreview(preview))
			if len(preview) == 0 {
				return nil
			}

			if !flagYes && !confirm(cmd, fmt.Sprintf("Rename %d items?", len(preview))) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			done, err := engine.Execute()
			if err != nil {
				return err
			}
			outcome := <-done
			fmt.Fprint(cmd.OutOrStdout(), app.RenderOutcome(outcome))
			if outcome.Err != nil {
				return outcome.Err
			}

			// The undo log lives in process memory, so the one chance
			// to undo from the CLI is before this process exits.
			if engine.CanUndo() && interactive() && !flagYes {
				if confirm(cmd, "Undo this batch?") {
					result, err := engine.Undo()
					if err != nil {
						return err
					}
					fmt.Fprint(cmd.OutOrStdout(), app.RenderUndo(result))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
