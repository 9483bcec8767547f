package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/application/usecase"
	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/model"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/entity"
	domainurl "github.com/bnema/workbench/internal/domain/url"
)

var (
	recentJSON          bool
	recentAddFiles      []string
	recentAddFolders    []string
	recentAddWorkspaces []string
	recentAddActive     bool
	recentClearYes      bool
	recentPickNewWindow bool
)

var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"recents"},
	Short:   "Show and manage recently opened entries",
	Long: `Recently opened files, folders and workspaces, most recent first.

Folders and workspaces share one list; files have their own. Opening a
folder or workspace through 'workbench open' records it automatically
unless recents.record_on_open is off.`,
	RunE: runRecentList,
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently opened entries",
	RunE:  runRecentList,
}

var recentAddCmd = &cobra.Command{
	Use:   "add [path...]",
	Short: "Record entries without opening them",
	Long: `Record files, folders or workspaces in the history.

Positional paths are classified like 'workbench open' does. Use --file,
--folder or --workspace to force the kind. --active records the working
directory as the workspace a session was started in, for shell hooks; it
follows recents.record_on_open.`,
	RunE: runRecentAdd,
}

var recentRemoveCmd = &cobra.Command{
	Use:     "remove <path|uri>...",
	Aliases: []string{"rm"},
	Short:   "Remove entries from the history",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRecentRemove,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every recently opened entry",
	RunE:  runRecentClear,
}

var recentPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a recent entry interactively and open it",
	RunE:  runRecentPick,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.AddCommand(recentListCmd, recentAddCmd, recentRemoveCmd, recentClearCmd, recentPickCmd)

	recentCmd.PersistentFlags().BoolVar(&recentJSON, "json", false, "output as JSON")

	recentAddCmd.Flags().StringArrayVar(&recentAddFiles, "file", nil, "record a file")
	recentAddCmd.Flags().StringArrayVar(&recentAddFolders, "folder", nil, "record a folder")
	recentAddCmd.Flags().StringArrayVar(&recentAddWorkspaces, "workspace", nil, "record a workspace configuration file")
	recentAddCmd.Flags().BoolVar(&recentAddActive, "active", false, "record the working directory as the active folder")

	recentClearCmd.Flags().BoolVarP(&recentClearYes, "yes", "y", false, "confirm clearing the history")

	recentPickCmd.Flags().BoolVarP(&recentPickNewWindow, "new-window", "n", false, "open the picked folder or workspace in a new window")
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	h, err := app.Recents.GetRecentlyOpened(app.Ctx())
	if err != nil {
		return err
	}

	if recentJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(h.ToSerialized())
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderHistory(h))
	return nil
}

func runRecentAdd(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}
	ctx := app.Ctx()

	targets, err := cli.ResolveTargets(cli.TargetArgs{Paths: args})
	if err != nil {
		return err
	}
	for _, group := range []struct {
		paths  []string
		target func(entity.Location) entity.OpenTarget
	}{
		{recentAddFiles, func(l entity.Location) entity.OpenTarget { return entity.FileTarget{FileLocation: l} }},
		{recentAddFolders, func(l entity.Location) entity.OpenTarget { return entity.FolderTarget{FolderLocation: l} }},
		{recentAddWorkspaces, func(l entity.Location) entity.OpenTarget { return entity.WorkspaceTarget{WorkspaceLocation: l} }},
	} {
		for _, p := range group.paths {
			loc, err := domainurl.FromPath(p)
			if err != nil {
				return err
			}
			targets = append(targets, group.target(entity.Location(loc)))
		}
	}
	if recentAddActive {
		if err := recordActive(ctx, app); err != nil {
			return err
		}
		if len(targets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderSuccess("Recorded the working directory"))
			return nil
		}
	}
	if len(targets) == 0 {
		return errors.New("nothing to add")
	}

	entries := make([]entity.RecentEntry, 0, len(targets))
	for _, t := range targets {
		entries = append(entries, entity.NewRecentEntry(t.TargetKind(), t.TargetLocation()))
	}
	if err := app.Recents.Add(ctx, entries...); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderSuccess(fmt.Sprintf("Recorded %d entries", len(entries))))
	return nil
}

// recordActive records the working directory without opening it.
func recordActive(ctx context.Context, app *cli.App) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	targets, err := cli.ResolveTargets(cli.TargetArgs{Paths: []string{wd}})
	if err != nil {
		return err
	}
	if app.Recorder == nil {
		return errors.New("recording is disabled (recents.record_on_open = false)")
	}
	return app.OpenWindow.RecordActiveWorkspace(ctx, targets[0])
}

func runRecentRemove(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	locations := make([]entity.Location, 0, len(args))
	for _, a := range args {
		loc, err := domainurl.FromPath(a)
		if err != nil {
			return err
		}
		locations = append(locations, entity.Location(loc))
	}

	if err := app.Recents.Remove(app.Ctx(), locations...); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderSuccess("Removed"))
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}
	if !recentClearYes {
		return errors.New("refusing to clear the history without --yes")
	}

	if err := app.Recents.Clear(app.Ctx()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderSuccess("History cleared"))
	return nil
}

func runRecentPick(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	m := model.NewPickerModel(app.Ctx(), app.Theme, app.Recents)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	picker, ok := finalModel.(model.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	result := picker.Result()
	if result == nil {
		return picker.Err()
	}

	out, err := app.OpenWindow.Execute(app.Ctx(), usecase.OpenWindowInput{
		Targets: []entity.OpenTarget{targetFor(result.Entry)},
		Options: entity.OpenOptions{ForceNewWindow: result.NewWindow || recentPickNewWindow},
	})
	printOpenOutput(cmd, styles.NewRenderer(app.Theme), out)
	return err
}

func targetFor(e entity.RecentEntry) entity.OpenTarget {
	switch e := e.(type) {
	case *entity.RecentFolder:
		return entity.FolderTarget{FolderLocation: e.FolderLocation}
	case *entity.RecentWorkspace:
		return entity.WorkspaceTarget{WorkspaceLocation: e.ConfigLocation}
	default:
		return entity.FileTarget{FileLocation: e.Location()}
	}
}
