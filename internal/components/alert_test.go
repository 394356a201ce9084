package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertVariants(t *testing.T) {
	t.Parallel()

	palette := GetTheme().Palette
	tests := []struct {
		alert *Alert
		class string
		color string
	}{
		{SuccessAlert("done"), "alert alert--success alert--dismissible", palette.Success.Base},
		{ErrorAlert("boom"), "alert alert--error alert--dismissible", palette.Danger.Base},
		{WarningAlert("careful"), "alert alert--warning alert--dismissible", palette.Warning.Base},
		{InfoAlert("fyi"), "alert alert--info alert--dismissible", palette.Info.Base},
		{SimpleAlert("plain"), "alert alert--info", palette.Info.Base},
	}

	for _, tt := range tests {
		r, err := tt.alert.Resolver()
		require.NoError(t, err)
		assert.Equal(t, tt.class, r.ClassName())
		assert.Equal(t, tt.color, r.Style().Map()["borderColor"])
		assert.Equal(t, tt.color, r.MustSelect("title").Style().Map()["color"])
	}
}

func TestAlertView(t *testing.T) {
	t.Parallel()

	view := NewAlert("Disk almost full", AlertOptions{}).
		WithVariant(AlertVariantWarning).
		WithTitle("Warning").
		WithDismissible(true).
		View()

	assert.Contains(t, view, "Warning")
	assert.Contains(t, view, "Disk almost full")
	assert.Contains(t, view, "[×]")

	plain := SimpleAlert("hello").View()
	assert.Contains(t, plain, "hello")
	assert.NotContains(t, plain, "[×]")
}

func TestAlertDismissiblePadding(t *testing.T) {
	t.Parallel()

	r, err := SuccessAlert("x").Resolver()
	require.NoError(t, err)
	assert.Equal(t, GetTheme().Spacing.Medium, r.Style().Map()["paddingRight"])

	r, err = SuccessAlert("x").WithDismissible(false).Resolver()
	require.NoError(t, err)
	assert.NotContains(t, r.Style().Map(), "paddingRight")
}
