package atomic

import (
	"maps"

	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// Decorator returns a decorator that replaces the direct style with a class
// rule in s. The generated class is appended to the className; other attrs
// pass through. Props without a style are returned unchanged.
func (s *Sheet) Decorator() substyle.Decorator {
	return func(props substyle.StyleProps) substyle.StyleProps {
		if props.Style == nil {
			return props
		}
		class := s.AddClass(substyle.PickDirect(props.Style, substyle.DefaultObjectProps))
		return substyle.StyleProps{
			ClassName: joinClass(props.ClassName, class),
			Attrs:     props.Attrs,
		}
	}
}

// DecorateAsClasses returns a decorator that always emits a generated
// class, even for an empty style.
func DecorateAsClasses(s *Sheet) substyle.Decorator {
	return func(props substyle.StyleProps) substyle.StyleProps {
		class := s.AddClass(substyle.PickDirect(props.Style, substyle.DefaultObjectProps))
		return substyle.StyleProps{ClassName: joinClass(props.ClassName, class)}
	}
}

// DecorateAsDataAttributes returns a decorator that marks nodes with a
// generated data-* attribute and keeps the className untouched.
func DecorateAsDataAttributes(s *Sheet) substyle.Decorator {
	return func(props substyle.StyleProps) substyle.StyleProps {
		attr := s.AddAttribute(substyle.PickDirect(props.Style, substyle.DefaultObjectProps))
		attrs := maps.Clone(props.Attrs)
		if attrs == nil {
			attrs = make(map[string]any, 1)
		}
		attrs[attr] = ""
		return substyle.StyleProps{ClassName: props.ClassName, Attrs: attrs}
	}
}

func joinClass(className, class string) string {
	if className == "" {
		return class
	}
	return className + " " + class
}
