package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaletteHex(t *testing.T) {
	errs := ValidatePaletteHex("appearance.palette", map[string]string{
		"text":   "#ffffff",
		"accent": "green",
		"border": "#12345",
	})

	assert.Equal(t, []string{
		"appearance.palette.accent must be a hex color like #RRGGBB",
		"appearance.palette.border must be a hex color like #RRGGBB",
	}, errs)
}

func TestValidateCommand(t *testing.T) {
	assert.Empty(t, ValidateCommand("editor.command", "xdg-open"))
	assert.NotEmpty(t, ValidateCommand("editor.command", "  "))
	assert.NotEmpty(t, ValidateCommand("editor.command", "vim\nrm"))
}
