package substyle

import "maps"

// StyleProps is the bag of props a Resolver spreads onto a node.
type StyleProps struct {
	// Style is nil when no style is set.
	Style Tree
	// ClassName is empty when no class name is set.
	ClassName string
	// Attrs carries extra props added by a Decorator, e.g. data-* attributes.
	Attrs map[string]any
}

// Decorator post-processes the props of every Resolver before they are
// exposed. Back-ends use it to swap inline styles for generated class names.
// The result is opaque to the resolver.
type Decorator func(StyleProps) StyleProps

// DefaultDecorator keeps the class name and reduces the style to its direct
// declarations.
func DefaultDecorator(props StyleProps) StyleProps {
	var out StyleProps
	if props.Style != nil {
		out.Style = PickDirect(props.Style, DefaultObjectProps)
	}
	out.ClassName = props.ClassName
	return out
}

func (p StyleProps) clone() StyleProps {
	if p.Attrs != nil {
		p.Attrs = maps.Clone(p.Attrs)
	}
	return p
}
