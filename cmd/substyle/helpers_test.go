package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testStylesheet = `version: "1"
settings:
  auto_class: true
  prefix: ui
components:
  button:
    className: btn
    default:
      color: "#333"
      backgroundColor: "#eee"
      padding: "0 2"
      label:
        fontWeight: bold
      "&primary":
        color: "#fff"
        backgroundColor: "#06c"
      "&disabled":
        opacity: 0.5
        label:
          textDecoration: line-through
    modifiers: ["&primary"]
  Alert Box:
    css: "border-style: rounded; padding: 1"
    style:
      padding: 2
      title:
        fontWeight: bold
`

func writeStylesheet(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeCommand runs the root command with args and returns stdout and
// stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
