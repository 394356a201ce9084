package atomic

import (
	"testing"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
	"github.com/stretchr/testify/require"
)

func TestRuleCSS(t *testing.T) {
	t.Parallel()

	style := substyle.Tree{
		{Key: "width", Value: 50},
		{Key: "opacity", Value: 0.5},
		{Key: "backgroundColor", Value: "red"},
		{Key: ":hover", Value: substyle.Tree{{Key: "color", Value: "blue"}}},
		{Key: "@media (min-width: 600px)", Value: substyle.Tree{{Key: "width", Value: "50%"}}},
	}

	want := `.btn {
  width: 50px;
  opacity: 0.5;
  background-color: red;
}
.btn:hover {
  color: blue;
}
@media (min-width: 600px) {
  .btn {
    width: 50%;
  }
}
`
	require.Equal(t, want, RuleCSS(".btn", style))
}

func TestRuleCSSKeyframes(t *testing.T) {
	t.Parallel()

	keyframes := substyle.Tree{
		{Key: "0%", Value: substyle.Tree{{Key: "transform", Value: "rotate(0deg)"}}},
		{Key: "100%", Value: substyle.Tree{{Key: "transform", Value: "rotate(360deg)"}}},
	}
	name := "css-kf-" + Hash(keyframes)

	got := RuleCSS(".spin", substyle.Tree{{Key: "animationName", Value: keyframes}})

	want := "@keyframes " + name + ` {
  0% {
    transform: rotate(0deg);
  }
  100% {
    transform: rotate(360deg);
  }
}
.spin {
  animation-name: ` + name + `;
}
`
	require.Equal(t, want, got)
}

func TestHyphenate(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"backgroundColor":  "background-color",
		"color":            "color",
		"msFilter":         "-ms-filter",
		"WebkitTransition": "-webkit-transition",
		"--main-color":     "--main-color",
		"border-radius":    "border-radius",
	}
	for in, want := range tests {
		require.Equal(t, want, Hyphenate(in), in)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "10px", FormatValue("width", 10))
	require.Equal(t, "0", FormatValue("margin", 0))
	require.Equal(t, "700", FormatValue("fontWeight", 700))
	require.Equal(t, "1.5", FormatValue("lineHeight", 1.5))
	require.Equal(t, "2.5px", FormatValue("padding", 2.5))
	require.Equal(t, "auto", FormatValue("margin", "auto"))
	require.Equal(t, "true", FormatValue("x", true))
}

func TestSheetCSSUsesNestedPseudo(t *testing.T) {
	t.Parallel()

	sheet := NewSheet("")
	class := sheet.AddClass(substyle.Tree{
		{Key: "color", Value: "red"},
		{Key: ":hover", Value: substyle.Tree{{Key: "color", Value: "blue"}}},
	})

	require.Equal(t, "."+class+" {\n  color: red;\n}\n."+class+":hover {\n  color: blue;\n}\n", sheet.CSS())
}
