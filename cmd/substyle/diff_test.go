package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffCommandShowsChangedDeclarations(t *testing.T) {
	t.Parallel()

	path := writeStylesheet(t, testStylesheet)
	stdout, _, err := executeCommand(t, "diff", "-f", path, "-c", "button", "--from", "&primary", "--to", "&disabled")
	require.NoError(t, err)

	require.Contains(t, stdout, "--- button &primary\n+++ button &disabled\n")
	require.Contains(t, stdout, "-.btn.btn--primary {\n")
	require.Contains(t, stdout, "+.btn.btn--primary.btn--disabled {\n")
	require.Contains(t, stdout, "+  opacity: 0.5;\n")
	require.Contains(t, stdout, "2 added, 1 removed\n")
}

func TestDiffCommandIdenticalSides(t *testing.T) {
	t.Parallel()

	path := writeStylesheet(t, testStylesheet)
	stdout, _, err := executeCommand(t, "diff", "-f", path, "-c", "button", "--to", "&primary")
	require.NoError(t, err)
	require.Equal(t, "no differences\n", stdout)
}

func TestDiffCommandElements(t *testing.T) {
	t.Parallel()

	path := writeStylesheet(t, testStylesheet)
	stdout, _, err := executeCommand(t, "diff", "-f", path, "-c", "button", "-s", "label", "--to", "&disabled")
	require.NoError(t, err)
	require.Contains(t, stdout, "+  text-decoration: line-through;\n")
}
