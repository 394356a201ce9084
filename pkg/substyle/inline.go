package substyle

// Inline combines resolved props with ad-hoc inline styles. Resolvers
// contribute all their props, later ones overriding class name and attrs;
// trees are spread into the style. Styles are merged shallowly, later parts
// winning.
func Inline(parts ...Style) StyleProps {
	var out StyleProps
	style := Tree{}
	for _, part := range parts {
		switch p := part.(type) {
		case *Resolver:
			if p == nil {
				continue
			}
			props := p.Props()
			if props.ClassName != "" {
				out.ClassName = props.ClassName
			}
			for k, v := range props.Attrs {
				if out.Attrs == nil {
					out.Attrs = make(map[string]any, len(props.Attrs))
				}
				out.Attrs[k] = v
			}
			style = spread(style, props.Style)
		default:
			if t, ok := AsTree(part); ok {
				style = spread(style, t)
			}
		}
	}
	out.Style = style
	return out
}

func spread(dst, src Tree) Tree {
	for _, e := range src {
		dst = dst.put(e.Key, e.Value)
	}
	return dst
}
