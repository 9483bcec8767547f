package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
)

var (
	openNewWindow   bool
	openReuseWindow bool
	openFolderURIs  []string
	openFileURIs    []string
)

var openCmd = &cobra.Command{
	Use:   "open [path...]",
	Short: "Open folders, workspaces and files",
	Long: `Open each target in the editor.

Directories open as folders and *.code-workspace files as multi-root
workspaces; both go to a new window or replace the current one. Every
other path opens as a file in the current session, whatever the flags.

--new-window wins over --reuse-window when both are given. Without
either flag the window.open_folders_in_new_window setting decides
("on" opens a new window, "off" and "default" reuse the current one).

Examples:
  workbench open ~/src/project              # Folder, window per setting
  workbench open -n team.code-workspace     # Workspace in a new window
  workbench open -r ~/src/api notes.md      # Replace window, open notes.md
  workbench open --folder-uri vscode-remote://ssh-remote+box/srv`,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().BoolVarP(&openNewWindow, "new-window", "n", false, "open folders and workspaces in a new window")
	openCmd.Flags().BoolVarP(&openReuseWindow, "reuse-window", "r", false, "replace the current window")
	openCmd.Flags().StringArrayVar(&openFolderURIs, "folder-uri", nil, "open a folder by URI")
	openCmd.Flags().StringArrayVar(&openFileURIs, "file-uri", nil, "open a file by URI")
}

func runOpen(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	targets, err := cli.ResolveTargets(cli.TargetArgs{
		Paths:      args,
		FolderURIs: openFolderURIs,
		FileURIs:   openFileURIs,
	})
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errors.New("nothing to open")
	}

	out, err := app.OpenWindow.Execute(app.Ctx(), usecase.OpenWindowInput{
		Targets: targets,
		Options: entity.OpenOptions{
			ForceNewWindow:   openNewWindow,
			ForceReuseWindow: openReuseWindow,
		},
	})
	printOpenOutput(cmd, styles.NewRenderer(app.Theme), out)
	if err != nil {
		return fmt.Errorf("%d of %d targets failed", len(out.Failures), len(targets))
	}
	return nil
}

func printOpenOutput(cmd *cobra.Command, r *styles.Renderer, out *usecase.OpenWindowOutput) {
	if out == nil {
		return
	}
	w := cmd.OutOrStdout()
	for _, nav := range out.Navigations {
		fmt.Fprintln(w, r.RenderNavigation(nav))
	}
	for _, f := range out.OpenedFiles {
		fmt.Fprintln(w, r.RenderOpenedFile(f))
	}
	for _, f := range out.Failures {
		fmt.Fprintln(cmd.ErrOrStderr(), r.RenderFailure(f.Target.TargetLocation(), f.Err))
	}
}
