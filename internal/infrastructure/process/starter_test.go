//go:build linux || darwin

package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetached_StartsProgram(t *testing.T) {
	pid, err := Detached{}.Start(context.Background(), "true")

	require.NoError(t, err)
	assert.Positive(t, pid)
}

func TestDetached_UnknownProgram(t *testing.T) {
	_, err := Detached{}.Start(context.Background(), "workbench-no-such-binary-xyz")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "workbench-no-such-binary-xyz")
}
