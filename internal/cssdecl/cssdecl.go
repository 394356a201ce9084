// Package cssdecl parses inline CSS declaration lists into style trees.
package cssdecl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// Parse reads declarations such as "color: red; font-weight: 700" into a
// Tree. Property names are camelized, unitless numbers become int or
// float64 and everything else is kept as written. Later declarations of the
// same property win.
func Parse(text string) (substyle.Tree, error) {
	parser := css.NewParser(parse.NewInputString(text), true)
	out := substyle.Tree{}

	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse declarations %q: %w", text, err)
			}
			return out, nil
		case css.DeclarationGrammar:
			values := parser.Values()
			if len(values) == 0 {
				continue
			}
			out = out.Set(PropertyName(string(data)), value(values))
		case css.CustomPropertyGrammar:
			var raw strings.Builder
			for _, t := range parser.Values() {
				raw.Write(t.Data)
			}
			out = out.Set(string(data), strings.TrimSpace(raw.String()))
		case css.AtRuleGrammar, css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			return nil, fmt.Errorf("parse declarations %q: nested rules are not supported", text)
		}
	}
}

// PropertyName converts a CSS property to its camelCase key:
// "font-weight" becomes "fontWeight", "-ms-filter" "msFilter".
func PropertyName(prop string) string {
	if strings.HasPrefix(prop, "--") {
		return prop
	}
	if rest, ok := strings.CutPrefix(prop, "-ms-"); ok {
		return substyle.Camelize("ms-" + rest)
	}
	return substyle.Camelize(prop)
}

func value(tokens []css.Token) any {
	if len(tokens) == 1 && tokens[0].TokenType == css.NumberToken {
		raw := string(tokens[0].Data)
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}

	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
