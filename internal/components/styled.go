package components

import (
	"github.com/alexisbeaulieu97/substyle/internal/render"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// styled carries the caller props of a component and the binding that turns
// them into resolvers.
type styled struct {
	className string
	props     substyle.Props
	binding   *substyle.Binding
	inline    substyle.Tree
}

func newStyled(className string) styled {
	return styled{
		className: className,
		props:     substyle.Props{ClassName: className},
		binding:   substyle.NewBinding(nil),
	}
}

// setProps replaces the caller props. An empty class name keeps the
// component's own.
func (s *styled) setProps(props substyle.Props) {
	if props.ClassName == "" {
		props.ClassName = s.className
	}
	s.props = props
}

// setDecorator rebinds the component to a new decorator.
func (s *styled) setDecorator(decorator substyle.Decorator) {
	s.binding = substyle.NewBinding(decorator)
}

// resolve selects modifiers on top of the component's default style.
func (s *styled) resolve(modifiers substyle.Toggles, defaultStyle substyle.Tree) (*substyle.Resolver, error) {
	return s.binding.Use(s.props, modifiers, defaultStyle)
}

// spec translates the direct style of r, with the inline overrides applied
// on the root node.
func (s *styled) spec(r *substyle.Resolver, root bool) render.Spec {
	if root && len(s.inline) > 0 {
		return render.Translate(substyle.Inline(r, s.inline).Style)
	}
	return render.Translate(r.Style())
}

// part renders text with the style of element under r.
func part(r *substyle.Resolver, element, text string) string {
	return render.Render(r.MustSelect(element), text)
}
