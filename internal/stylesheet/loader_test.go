package stylesheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/substyle/internal/logger"
	stylerrors "github.com/alexisbeaulieu97/substyle/pkg/errors"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

func TestLoadKeepsOrder(t *testing.T) {
	t.Parallel()

	doc, err := Load(filepath.Join("testdata", "components.yaml"))
	require.NoError(t, err)

	require.Equal(t, "1", doc.Version)
	require.Equal(t, []string{"button", "Alert Box", "card"}, doc.Components.Names())

	button, err := doc.Lookup("button")
	require.NoError(t, err)
	require.Equal(t, "btn", button.ClassName)
	require.Equal(t, "Clickable action", button.Description)
	require.Equal(t, []string{"&primary"}, button.Modifiers)
	require.Equal(t, []string{"color", "backgroundColor", "padding", "label", "&primary", "&disabled"}, button.Default.Keys())
	require.Nil(t, button.Style)

	disabled, ok := button.Default.Subtree("&disabled")
	require.True(t, ok)
	require.Equal(t, map[string]any{
		"opacity": 0.5,
		"label":   map[string]any{"textDecoration": "line-through"},
	}, disabled.Map())
}

func TestLoadMergesCSSBelowStyle(t *testing.T) {
	t.Parallel()

	doc, err := Load(filepath.Join("testdata", "components.yaml"))
	require.NoError(t, err)

	alert, err := doc.Lookup("Alert Box")
	require.NoError(t, err)

	require.Equal(t, "ui-alert-box", alert.ClassName)
	require.Equal(t, map[string]any{
		"borderStyle": "rounded",
		"padding":     2,
		"title":       map[string]any{"fontWeight": "bold"},
	}, alert.Style.Map())
}

func TestLoadClassNames(t *testing.T) {
	t.Parallel()

	doc, err := Load(filepath.Join("testdata", "components.yaml"))
	require.NoError(t, err)

	card, err := doc.Lookup("card")
	require.NoError(t, err)

	require.Empty(t, card.ClassName)
	require.Equal(t, substyle.ClassNames{
		{Name: "card", Class: "c-1"},
		{Name: "card__header", Class: "c-2"},
		{Name: "card--compact", Class: "c-3"},
	}, card.ClassNames)
}

func TestLoadReportsAllValidationErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join("testdata", "invalid.yaml"))
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		var ve *stylerrors.ValidationError
		require.ErrorAs(t, e, &ve)
		fields = append(fields, ve.Field)
	}
	require.ElementsMatch(t, []string{
		"version",
		"components[0].className",
		"components[0].modifiers[0]",
	}, fields)
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join("testdata", "malformed.yaml"))

	var parseErr *stylerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Greater(t, parseErr.Line, 0)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	var parseErr *stylerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsBadTrees(t *testing.T) {
	t.Parallel()

	data := []byte(`
version: "1"
components:
  a:
    style:
      "&": {color: red}
  c:
    default: 12
`)
	_, err := NewLoader(nil).Parse(data, "inline.yaml")
	require.Error(t, err)
}

func TestParseAggregatesTreeErrors(t *testing.T) {
	t.Parallel()

	data := []byte(`
version: "1"
components:
  a:
    style:
      "&": {color: red}
      label:
        "": 1
  b:
    default:
      "&": 1
`)
	_, err := NewLoader(nil).Parse(data, "inline.yaml")
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 3)
}

func TestLoaderLogsRejections(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Writer: buf})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sheet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\ncomponents: {}\n"), 0o644))

	_, err = NewLoader(log).Load(path)
	require.Error(t, err)
	require.Contains(t, buf.String(), "stylesheet rejected")
}

func TestClassNameFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "primary-button", ClassNameFor("", "Primary Button"))
	require.Equal(t, "ui-card", ClassNameFor("ui", "card"))
}
