package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaFileName = "config.schema.json"

// GenerateSchema returns the JSON schema of Config, indented.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Fields are optional in the file; viper fills defaults.
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/workbench/config.schema.json"
	schema.Title = "Workbench Configuration"
	schema.Description = "Configuration schema for workbench, the recent-location registry and window-open router"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json into dir and returns its path.
func GenerateSchemaFile(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
