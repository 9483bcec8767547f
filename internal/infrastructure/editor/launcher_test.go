package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	processmocks "github.com/bnema/workbench/internal/infrastructure/process/mocks"
)

func TestLauncher_OpensAllFilesInOneCall(t *testing.T) {
	starter := processmocks.NewMockStarter(t)
	starter.EXPECT().
		Start(mock.Anything, "code", []string{"--reuse-window", "/tmp/a.txt", "/tmp/b c.txt", "vscode-remote://host/x"}).
		Return(42, nil).
		Once()

	l := NewLauncher("code", []string{"--reuse-window"}, starter)
	err := l.OpenEditors(context.Background(), []entity.Location{
		"file:///tmp/a.txt",
		"/tmp/b c.txt",
		"vscode-remote://HOST/x",
	})

	require.NoError(t, err)
}

func TestLauncher_NoFilesIsNoop(t *testing.T) {
	starter := processmocks.NewMockStarter(t)

	require.NoError(t, NewLauncher("code", nil, starter).OpenEditors(context.Background(), nil))
	starter.AssertNotCalled(t, "Start", mock.Anything, mock.Anything, mock.Anything)
}

func TestLauncher_StartFailure(t *testing.T) {
	starter := processmocks.NewMockStarter(t)
	startErr := errors.New("exec: not found")
	starter.EXPECT().Start(mock.Anything, "nope", mock.Anything).Return(0, startErr).Once()

	err := NewLauncher("nope", nil, starter).OpenEditors(context.Background(), []entity.Location{"file:///a"})

	require.ErrorIs(t, err, startErr)
	assert.Contains(t, err.Error(), "nope")
}

func TestNewLauncher_CopiesArgs(t *testing.T) {
	args := []string{"-n"}
	l := NewLauncher("code", args, nil)
	args[0] = "mutated"

	assert.Equal(t, []string{"-n"}, l.args)
}
