package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# workbench configuration"))

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if m := tomlSectionRE.FindStringSubmatch(line); m != nil {
			sections = append(sections, m[1])
		}
	}
	require.NotEmpty(t, sections)
	assert.IsNonDecreasing(t, sections)
	assert.Contains(t, sections, "window")
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `top = 1

[window]
open_folders_in_new_window = 'on'

[appearance]
  [appearance.palette]
  accent = '#000000'

[editor]
command = 'vim'
`

	expected := `top = 1

[appearance]

  [appearance.palette]
  accent = '#000000'

[editor]
command = 'vim'

[window]
open_folders_in_new_window = 'on'
`

	assert.Equal(t, expected, sortTOMLSections(input))
}
