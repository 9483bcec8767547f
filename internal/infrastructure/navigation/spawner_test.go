package navigation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/workbench/internal/domain/entity"
	processmocks "github.com/bnema/workbench/internal/infrastructure/process/mocks"
)

func TestSpawner_NewWindowArgs(t *testing.T) {
	starter := processmocks.NewMockStarter(t)
	starter.EXPECT().Start(mock.Anything, "code", []string{"--new-window", "/proj"}).Return(7, nil).Once()

	s := NewSpawner(SpawnerConfig{
		Command:         "code",
		NewWindowArgs:   []string{"--new-window"},
		ReuseWindowArgs: []string{"--reuse-window"},
	}, starter)

	require.NoError(t, s.Handle(context.Background(), folderRequest("file:///proj", true)))
}

func TestSpawner_ReuseWindowArgs(t *testing.T) {
	starter := processmocks.NewMockStarter(t)
	starter.EXPECT().
		Start(mock.Anything, "code", []string{"--reuse-window", "/w/x.code-workspace"}).
		Return(7, nil).
		Once()

	s := NewSpawner(SpawnerConfig{
		Command:         "code",
		NewWindowArgs:   []string{"--new-window"},
		ReuseWindowArgs: []string{"--reuse-window"},
	}, starter)

	req := entity.NavigationRequest{Kind: entity.OpenTargetWorkspace, Location: "/w/x.code-workspace"}
	require.NoError(t, s.Handle(context.Background(), req))
}

func TestSpawner_StartFailure(t *testing.T) {
	starter := processmocks.NewMockStarter(t)
	startErr := errors.New("not found")
	starter.EXPECT().Start(mock.Anything, "xdg-open", []string{"/proj"}).Return(0, startErr).Once()

	s := NewSpawner(SpawnerConfig{Command: "xdg-open"}, starter)

	require.ErrorIs(t, s.Handle(context.Background(), folderRequest("file:///proj", true)), startErr)
}

func TestSpawner_ThroughBus(t *testing.T) {
	starter := processmocks.NewMockStarter(t)
	starter.EXPECT().Start(mock.Anything, "code", []string{"-n", "/proj"}).Return(1, nil).Once()

	bus := NewBus(NewSpawner(SpawnerConfig{Command: "code", NewWindowArgs: []string{"-n"}}, starter), 1)
	bus.Start(context.Background())
	t.Cleanup(bus.Close)

	require.NoError(t, bus.Navigate(context.Background(), folderRequest("file:///proj", true)))
}
