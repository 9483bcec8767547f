// Package cmd provides Cobra CLI commands for workbench.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "workbench",
		Short: "Open folders, workspaces and files and remember what you opened",
		Long: `Workbench routes open requests to your editor and keeps a history of
recently opened files, folders and multi-root workspaces.

Folders and workspaces open in a new window or replace the current one,
depending on --new-window, --reuse-window and the
window.open_folders_in_new_window setting. Files always open in the
current editor session.

Use 'workbench recent' to inspect and prune the history, or
'workbench recent pick' to choose an entry interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{WatchConfig: watchesConfig(cmd)})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

const annotationNoApp = "workbench/no-app"

// needsApp skips initialization for commands that don't need app context.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "version":
		return false
	}
	_, skip := cmd.Annotations[annotationNoApp]
	return !skip
}

// watchesConfig reports whether cmd stays up long enough to follow config edits.
func watchesConfig(cmd *cobra.Command) bool {
	return cmd.Name() == "pick"
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	var theme *styles.Theme
	if app != nil {
		theme = app.Theme
	} else {
		theme = styles.NewTheme(nil)
	}
	// PersistentPostRun is skipped when a command fails.
	closeApp()
	if err != nil {
		fmt.Fprint(os.Stderr, styles.NewRenderer(theme).RenderError(err))
		os.Exit(1)
	}
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "workbench %s\n", buildInfo.Short())
		fmt.Fprintf(out, "built: %s\n", buildInfo.BuildDate)
		if buildInfo.GoVersion != "" {
			fmt.Fprintf(out, "go: %s\n", buildInfo.GoVersion)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
