package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/substyle/internal/cssdecl"
	"github.com/alexisbeaulieu97/substyle/internal/stylesheet"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// queryOptions are the flags naming one resolved node.
type queryOptions struct {
	component string
	modifiers []string
	path      []string
	inline    string
}

func (o *queryOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.component, "component", "c", "", "Component to resolve")
	cmd.Flags().StringSliceVarP(&o.modifiers, "modifier", "m", nil, "Modifier to select, e.g. '&primary' (repeatable)")
	cmd.Flags().StringSliceVarP(&o.path, "select", "s", nil, "Element to descend into, one level per use")
	cmd.Flags().StringVar(&o.inline, "inline", "", "Inline CSS declarations applied last, e.g. 'color: red'")
	cmd.MarkFlagRequired("component") //nolint:errcheck
}

// resolution is a resolved node together with how it was reached.
type resolution struct {
	component *stylesheet.Component
	query     stylesheet.Query
	props     substyle.StyleProps
}

// title names the node: the component followed by its element path.
func (r resolution) title() string {
	return strings.Join(append([]string{r.component.Name}, r.query.Path...), " › ")
}

func (o *queryOptions) resolve(s *session, operation string, decorator substyle.Decorator) (resolution, error) {
	comp, err := s.component(operation, o.component)
	if err != nil {
		return resolution{}, err
	}

	q := stylesheet.Query{Modifiers: o.modifiers, Path: o.path}
	r, err := comp.Resolve(comp.Root(decorator), q)
	if err != nil {
		return resolution{}, newCommandError(operation, "resolving style", err, "Check the selected modifiers and elements against 'substyle tree'.")
	}

	props := r.Props()
	if o.inline != "" {
		inline, err := cssdecl.Parse(o.inline)
		if err != nil {
			return resolution{}, newCommandError(operation, "parsing inline declarations", err, "Write declarations as 'property: value; ...'.")
		}
		props = substyle.Inline(r, inline)
	}

	s.log.Debug("style resolved", "component", comp.Name, "class_name", props.ClassName, "declarations", len(props.Style))
	return resolution{component: comp, query: q, props: props}, nil
}
