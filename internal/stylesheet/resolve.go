package stylesheet

import (
	"slices"

	stylerrors "github.com/alexisbeaulieu97/substyle/pkg/errors"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// Lookup returns the component called name.
func (d *Document) Lookup(name string) (*Component, error) {
	for i := range d.Components {
		if d.Components[i].Name == name {
			return &d.Components[i], nil
		}
	}
	return nil, &stylerrors.NotFoundError{Component: name, Known: d.Components.Names()}
}

// Props returns the resolver props of the component.
func (c *Component) Props() substyle.Props {
	props := substyle.Props{
		ClassName:  c.ClassName,
		ClassNames: c.ClassNames,
	}
	if c.Style != nil {
		props.Style = c.Style
	}
	return props
}

// Root creates the component's root Resolver.
func (c *Component) Root(decorator substyle.Decorator) *substyle.Resolver {
	return substyle.Create(c.Props(), decorator)
}

// Query selects modifiers on the component and descends into a path of
// elements.
type Query struct {
	// Modifiers are selected in addition to the component's own.
	Modifiers []string
	// Path lists element keys, one level each.
	Path []string
}

// Selection returns the component's modifiers followed by those of q,
// without repeats.
func (c *Component) Selection(q Query) []string {
	selection := make([]string, 0, len(c.Modifiers)+len(q.Modifiers))
	for _, m := range slices.Concat(c.Modifiers, q.Modifiers) {
		if !slices.Contains(selection, m) {
			selection = append(selection, m)
		}
	}
	return selection
}

// Resolve applies the component's default style and modifiers, then q.
func (c *Component) Resolve(root *substyle.Resolver, q Query) (*substyle.Resolver, error) {
	selection := substyle.Selection(c.Selection(q))

	var defaultStyle any
	if c.Default != nil {
		defaultStyle = c.Default
	}

	r, err := root.SelectWithDefault(selection, defaultStyle)
	if err != nil {
		return nil, stylerrors.NewResolveError(c.Name, err)
	}
	for _, el := range q.Path {
		r, err = r.Select(el)
		if err != nil {
			return nil, stylerrors.NewResolveError(c.Name, err)
		}
	}
	return r, nil
}
