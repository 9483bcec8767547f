package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/workbench/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:    "gen-docs",
	Short:  "Generate documentation from CLI commands",
	Hidden: true,
	Long: `Generate man pages or markdown from the command definitions.

By default, man pages are installed to $XDG_DATA_HOME/man/man1/ so they
are available via 'man workbench' (run 'mandb' to refresh the index).

Examples:
  workbench gen-docs                        # Install man pages
  workbench gen-docs --format markdown      # Generate markdown docs into ./docs`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir := genDocsOutputDir
	if outputDir == "" {
		switch genDocsFormat {
		case "man":
			dirs, err := config.GetXDGDirs()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			outputDir = filepath.Join(filepath.Dir(dirs.DataHome), "man", "man1")
		case "markdown":
			outputDir = "./docs"
		}
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Reproducible output.
	rootCmd.DisableAutoGenTag = true

	var ext string
	switch genDocsFormat {
	case "man":
		ext = ".1"
		header := &doc.GenManHeader{
			Title:   "WORKBENCH",
			Section: "1",
			Source:  "workbench " + buildInfo.Version,
			Manual:  "Workbench Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
	case "markdown":
		ext = ".md"
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
	return nil
}
