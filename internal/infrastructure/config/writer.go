package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const configHeader = "# workbench configuration. Run `workbench config schema` for the full reference.\n\n"

var tomlSectionRE = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration as TOML. Fields keep their definition
// order and sections are sorted alphabetically so rewrites produce stable diffs.
// The file is replaced atomically.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	content := configHeader + sortTOMLSections(buf.String())

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders table blocks by their dotted header. Keys that appear
// before the first header stay on top.
func sortTOMLSections(content string) string {
	type block struct {
		header string
		lines  []string
	}

	var (
		preamble []string
		blocks   []block
	)
	for _, line := range strings.Split(content, "\n") {
		if m := tomlSectionRE.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{header: m[1], lines: []string{line}})
			continue
		}
		if len(blocks) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	slices.SortStableFunc(blocks, func(a, b block) int {
		return strings.Compare(a.header, b.header)
	})

	var out []string
	if p := strings.TrimRight(strings.Join(preamble, "\n"), "\n"); p != "" {
		out = append(out, p)
	}
	for _, b := range blocks {
		out = append(out, strings.TrimRight(strings.Join(b.lines, "\n"), "\n"))
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n\n") + "\n"
}
