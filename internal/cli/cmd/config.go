package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/cli/styles"
	"github.com/bnema/workbench/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and state live, list keys and change settings.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, state and log locations",
	RunE:  runConfigPath,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every setting with its current value",
	RunE:  runConfigKeys,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Validate and persist a single setting.

The file is rewritten with sections in a stable order. Invalid values are
rejected and leave the file untouched.

Examples:
  workbench config set window.open_folders_in_new_window on
  workbench config set storage.backend yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print the JSON schema of the config file",
	Annotations: map[string]string{annotationNoApp: ""},
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configKeysCmd, configSetCmd, configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	r := styles.NewRenderer(app.Theme)
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, r.RenderPath("config ", app.ConfigManager.GetConfigFile()))
	fmt.Fprintln(w, r.RenderPath("state  ", fmt.Sprintf("%s (%s)", app.StoragePath(), app.Config.Storage.Backend)))
	if logDir, err := app.Config.Logging.ResolvedLogDir(); err == nil {
		fmt.Fprintln(w, r.RenderPath("logs   ", logDir))
	}
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	keys := app.ConfigManager.Keys()
	values := make(map[string]any, len(keys))
	for _, k := range keys {
		values[k] = app.ConfigManager.Value(k)
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderKeys(keys, values))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return cli.ErrNotInitialized
	}

	if err := app.ConfigManager.Set(args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewRenderer(app.Theme).RenderSuccess(fmt.Sprintf("%s = %s", args[0], args[1])))
	return nil
}
