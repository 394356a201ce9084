package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle/atomic"
)

func TestTree(t *testing.T) {
	t.Parallel()

	style := substyle.Tree{
		{"color", "red"},
		{"label", substyle.Tree{{"x", 1}}},
		{":hover", substyle.Tree{{"color", "pink"}}},
		{"&primary", substyle.Tree{{"color", "blue"}}},
	}

	want := "button\n" +
		"├── color: red\n" +
		"├── label\n" +
		"│   └── x: 1\n" +
		"├── [direct]  :hover\n" +
		"│   └── color: pink\n" +
		"└── [modifier]  &primary\n" +
		"    └── color: blue\n"
	assert.Equal(t, want, Tree("button", style))
}

func TestTreeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty\n", Tree("empty", nil))
}

func TestResolver(t *testing.T) {
	t.Parallel()

	r := substyle.Create(substyle.Props{
		ClassName: "btn",
		Style:     substyle.Tree{{"color", "red"}, {"&on", substyle.Tree{{"color", "green"}}}},
	}, nil).MustSelect("&on")

	want := "btn\n" +
		"├── className: btn btn--on\n" +
		"└── style\n" +
		"    └── color: green\n"
	assert.Equal(t, want, Resolver("btn", r))
}

func TestResolverAttrs(t *testing.T) {
	t.Parallel()

	sheet := atomic.NewSheet("x")
	r := substyle.Create(substyle.Props{Style: substyle.Tree{{"color", "red"}}}, atomic.DecorateAsDataAttributes(sheet))

	out := Resolver("root", r)
	assert.Contains(t, out, "└── attrs\n")
	assert.Contains(t, out, `data-x-`+atomic.Hash(substyle.Tree{{"color", "red"}})+`: ""`)
	assert.NotContains(t, out, "style")
}

func TestDump(t *testing.T) {
	t.Parallel()

	out := Dump(substyle.Tree{{"color", "red"}})
	assert.Contains(t, out, "substyle.Tree")
	assert.Contains(t, out, `Key: (string) (len=5) "color"`)
	assert.Contains(t, out, `Value: (string) (len=3) "red"`)
	assert.NotContains(t, out, "0x")
}

func TestPropsWithoutStyle(t *testing.T) {
	t.Parallel()

	props := substyle.StyleProps{ClassName: "btn", Attrs: map[string]any{"role": "button"}}
	want := "node\n" +
		"├── className: btn\n" +
		"└── attrs\n" +
		"    └── role: \"button\"\n"
	assert.Equal(t, want, Props("node", props))
}
