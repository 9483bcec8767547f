package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Workbench Configuration", doc["title"])
	assert.Contains(t, string(data), "open_folders_in_new_window")
	assert.Contains(t, string(data), `"default"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := t.TempDir()

	path, err := GenerateSchemaFile(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
