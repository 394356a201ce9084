package atomic

import (
	"strings"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// MapPseudoSelectors rewrites pseudo-selector keys into nested form:
// ":hover" becomes "&:hover". Only the top level is rewritten.
func MapPseudoSelectors(style substyle.Tree) substyle.Tree {
	if style == nil {
		return nil
	}
	out := make(substyle.Tree, 0, len(style))
	for _, e := range style {
		if strings.HasPrefix(e.Key, ":") {
			e.Key = "&" + e.Key
		}
		out = append(out, e)
	}
	return out
}
