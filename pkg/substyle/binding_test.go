package substyle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBindingReusesResolver(t *testing.T) {
	t.Parallel()

	b := NewBinding(nil)
	style := Tree{{"color", "red"}}
	mapping := ClassNames{{"btn", "x"}}

	first := b.Resolve(Props{Style: style, ClassName: "btn", ClassNames: mapping})
	second := b.Resolve(Props{Style: style, ClassName: "btn", ClassNames: mapping})
	require.Same(t, first, second)

	changed := b.Resolve(Props{Style: Tree{{"color", "red"}}, ClassName: "btn", ClassNames: mapping})
	require.NotSame(t, first, changed)

	renamed := b.Resolve(Props{Style: style, ClassName: "other", ClassNames: mapping})
	require.NotSame(t, changed, renamed)
}

func TestBindingUseAppliesDefaultsAndModifiers(t *testing.T) {
	t.Parallel()

	defaultStyle := Tree{
		{"color", "black"},
		{"cursor", "pointer"},
		{"&disabled", Tree{{"cursor", "default"}, {"color", "gray"}}},
		{"label", Tree{{"fontWeight", "bold"}}},
	}
	b := NewBinding(nil)
	props := Props{Style: Tree{{"color", "red"}}, ClassName: "button"}

	r, err := b.Use(props, Toggles{{"&disabled", true}}, defaultStyle)
	require.NoError(t, err)

	require.Equal(t, "button button--disabled", r.ClassName())
	require.Equal(t, map[string]any{"color": "red", "cursor": "default"}, r.Style().Map())
	require.Equal(t, map[string]any{"fontWeight": "bold"}, r.MustSelect("label").Style().Map())

	again, err := b.Use(props, []string{"&disabled"}, defaultStyle)
	require.NoError(t, err)
	require.Same(t, r, again)
}

func TestBindingUseWithResolverStyle(t *testing.T) {
	t.Parallel()

	upstream := Create(Props{Style: Tree{{"color", "red"}}}, nil)
	b := NewBinding(nil)

	r, err := b.Use(Props{Style: upstream}, nil, Tree{{"color", "black"}, {"width", 10}})
	require.NoError(t, err)

	require.Equal(t, map[string]any{"color": "red", "width": 10}, r.Style().Map())
}

func TestSameStyle(t *testing.T) {
	t.Parallel()

	tree := Tree{{"a", 1}}
	r := Create(Props{}, nil)

	require.True(t, sameStyle(nil, nil))
	require.True(t, sameStyle(tree, tree))
	require.True(t, sameStyle(&tree, &tree))
	require.True(t, sameStyle(r, r))
	require.False(t, sameStyle(tree, &tree))
	require.False(t, sameStyle(tree, nil))
	require.False(t, sameStyle(Tree{{"a", 1}}, tree))
}
