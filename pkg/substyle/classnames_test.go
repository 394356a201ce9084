package substyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveClassNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		className string
		elements  []string
		modifiers []string
		want      []string
	}{
		{name: "element", className: "my-class", elements: []string{"toggle"}, want: []string{"my-class__toggle"}},
		{name: "modifier", className: "my-class", modifiers: []string{"&active"}, want: []string{"my-class", "my-class--active"}},
		{
			name:      "elements suppress modifiers",
			className: "my-class",
			elements:  []string{"btn"},
			modifiers: []string{"&disabled"},
			want:      []string{"my-class__btn"},
		},
		{
			name:      "existing modifier classes kept",
			className: "foo foo--bar",
			modifiers: []string{"&baz"},
			want:      []string{"foo", "foo--bar", "foo--baz"},
		},
		{name: "nothing selected", className: "my-class", want: []string{"my-class"}},
		{name: "no class name", modifiers: []string{"&a"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, deriveClassNames(tt.className, tt.elements, tt.modifiers))
		})
	}
}

func TestGuessBaseClassName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "foo", guessBaseClassName(ClassNames{{"foo__footer__button", "x"}}))
	require.Equal(t, "mycomp", guessBaseClassName(ClassNames{{"mycomp--readOnly", "x"}}))
	require.Equal(t, "foo", guessBaseClassName(ClassNames{{"foo", "x"}, {"bar", "y"}}))
	require.Equal(t, "", guessBaseClassName(ClassNames{}))
	require.Equal(t, "", guessBaseClassName(nil))
}

func TestMapClassNamesDropsUnmapped(t *testing.T) {
	t.Parallel()

	mapping := ClassNames{{"foo", "container"}, {"foo--empty", ""}, {"foo", "box"}}

	got := mapClassNames([]string{"foo", "foo--a", "foo--empty"}, mapping)

	require.Equal(t, []string{"box"}, got)
}
