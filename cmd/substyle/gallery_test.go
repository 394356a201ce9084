package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/substyle/internal/components"
)

func TestGalleryCommandRendersComponents(t *testing.T) {
	stdout, _, err := executeCommand(t, "gallery", "--theme", "dark")
	require.NoError(t, err)

	require.Contains(t, stdout, "=== Components (dark theme) ===")
	require.Contains(t, stdout, "secondary")
	require.Contains(t, stdout, "Disabled")
	require.Contains(t, stdout, "Stylesheet loaded")
	require.Contains(t, stdout, "Status warning")
	require.NotContains(t, stdout, "--- CSS ---")
	require.Equal(t, "light", components.GetTheme().Name)
}

func TestGalleryCommandCSS(t *testing.T) {
	stdout, _, err := executeCommand(t, "gallery", "--css")
	require.NoError(t, err)

	require.Contains(t, stdout, "--- CSS ---\n")
	require.Contains(t, stdout, "\n.css-")
	require.Contains(t, stdout, "  background: #3b82f6;\n")
}

func TestGalleryCommandUnknownTheme(t *testing.T) {
	_, _, err := executeCommand(t, "gallery", "--theme", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pick one of: dark, light.")
}
