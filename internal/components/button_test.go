package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle/atomic"
)

func TestButtonResolvesVariantAndSize(t *testing.T) {
	t.Parallel()

	palette := GetTheme().Palette
	b := NewButton("Save", ButtonOptions{Variant: ButtonVariantSuccess, Size: ButtonSizeLarge})

	r, err := b.Resolver()
	require.NoError(t, err)
	assert.Equal(t, "button button--success button--large", r.ClassName())

	style := r.Style().Map()
	assert.Equal(t, palette.Success.Base, style["background"])
	assert.Equal(t, palette.Success.OnBase, style["color"])
	assert.Equal(t, "1 3", style["padding"])
	assert.Equal(t, "bold", style["fontWeight"])
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	palette := GetTheme().Palette

	focused, err := SimpleButton("Go").WithFocus(true).Resolver()
	require.NoError(t, err)
	assert.Equal(t, "thick", focused.Style().Map()["borderStyle"])
	assert.Equal(t, palette.Primary.Base, focused.Style().Map()["borderColor"])

	disabled, err := SimpleButton("Go").WithFocus(true).WithDisabled(true).Resolver()
	require.NoError(t, err)
	assert.Equal(t, "button button--primary button--medium button--disabled", disabled.ClassName())
	assert.Equal(t, 0.5, disabled.Style().Map()["opacity"])
	assert.NotContains(t, disabled.Style().Map(), "borderStyle")
}

func TestButtonCallerStyleWins(t *testing.T) {
	t.Parallel()

	b := SimpleButton("Go").WithProps(substyle.Props{
		Style: substyle.Tree{
			{"&primary", substyle.Tree{{"background", "black"}}},
		},
	})

	r, err := b.Resolver()
	require.NoError(t, err)
	assert.Equal(t, "black", r.Style().Map()["background"])
	assert.Equal(t, GetTheme().Palette.Primary.OnBase, r.Style().Map()["color"])
	assert.True(t, strings.HasPrefix(r.ClassName(), "button "))
}

func TestButtonResolverIsMemoized(t *testing.T) {
	t.Parallel()

	b := SimpleButton("Go")
	first, err := b.Resolver()
	require.NoError(t, err)
	second, err := b.Resolver()
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := b.WithSize(ButtonSizeSmall).Resolver()
	require.NoError(t, err)
	assert.NotSame(t, first, other)
}

func TestButtonWithAtomicDecorator(t *testing.T) {
	t.Parallel()

	sheet := atomic.NewSheet("")
	b := SimpleButton("Go").WithDecorator(sheet.Decorator())

	r, err := b.Resolver()
	require.NoError(t, err)
	assert.Contains(t, r.ClassName(), "button--primary")
	assert.Contains(t, r.ClassName(), atomic.DefaultPrefix+"-")
	assert.Equal(t, 1, sheet.Len())
}

func TestButtonView(t *testing.T) {
	t.Parallel()

	view := SimpleButton("Submit").View()
	assert.Contains(t, view, "Submit")
	// rounded border on three lines
	assert.Equal(t, 3, lipgloss.Height(view))
}

func TestButtonVariantNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "muted", ButtonVariantMuted.String())
	assert.Equal(t, "primary", ButtonVariant(42).String())
	assert.Equal(t, "medium", ButtonSize(9).String())
}

func TestButtonGroupView(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewButtonGroup().View())

	group := NewButtonGroup(SimpleButton("OK")).
		AddButton(SimpleButton("Cancel").WithVariant(ButtonVariantMuted)).
		WithSpacing(2)
	view := group.View()

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "OK")
	assert.Contains(t, lines[1], "Cancel")
	assert.Less(t, strings.Index(lines[1], "OK"), strings.Index(lines[1], "Cancel"))
}
