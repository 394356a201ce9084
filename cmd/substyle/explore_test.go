package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/substyle/internal/tui"
)

func stubProgram(t *testing.T, err error) *tea.Model {
	t.Helper()

	original := runProgram
	t.Cleanup(func() { runProgram = original })

	var captured tea.Model
	runProgram = func(m tea.Model, _ ...tea.ProgramOption) error {
		captured = m
		return err
	}
	return &captured
}

func TestExploreCommandStartsExplorer(t *testing.T) {
	captured := stubProgram(t, nil)

	path := writeStylesheet(t, testStylesheet)
	_, _, err := executeCommand(t, "explore", "-f", path, "-c", "button", "--text", "Go")
	require.NoError(t, err)

	m, ok := (*captured).(tui.Model)
	require.True(t, ok)
	require.Equal(t, "btn btn--primary", m.Current().ClassName())
	require.Nil(t, m.Init())
	require.Contains(t, m.View(), "Go")
}

func TestExploreCommandWatchListensForChanges(t *testing.T) {
	captured := stubProgram(t, nil)

	path := writeStylesheet(t, testStylesheet)
	_, _, err := executeCommand(t, "explore", "-f", path, "-c", "button", "--watch")
	require.NoError(t, err)

	m := (*captured).(tui.Model)
	require.NotNil(t, m.Init())
}

func TestExploreCommandUnknownComponent(t *testing.T) {
	captured := stubProgram(t, nil)

	path := writeStylesheet(t, testStylesheet)
	_, _, err := executeCommand(t, "explore", "-f", path, "-c", "nope")
	require.Error(t, err)
	require.Nil(t, *captured)
}

func TestExploreCommandProgramFailure(t *testing.T) {
	stubProgram(t, errors.New("no tty"))

	path := writeStylesheet(t, testStylesheet)
	_, _, err := executeCommand(t, "explore", "-f", path, "-c", "button")
	require.ErrorContains(t, err, "failed to run explorer: no tty")
}
