// Package stylesheet loads component style definitions from YAML documents.
package stylesheet

import "github.com/alexisbeaulieu97/substyle/pkg/substyle"

// Document is a parsed stylesheet.
type Document struct {
	Version    string     `yaml:"version" validate:"required,oneof=1"`
	Settings   Settings   `yaml:"settings,omitempty"`
	Components Components `yaml:"components" validate:"required,min=1,dive"`

	// Path is the file the document was loaded from, if any.
	Path string `yaml:"-"`
}

// Settings holds document-wide options.
type Settings struct {
	// AutoClass derives a className from the component name when none is set.
	AutoClass bool `yaml:"auto_class,omitempty"`
	// Prefix is prepended to derived class names.
	Prefix string `yaml:"prefix,omitempty" validate:"omitempty,class_name"`
}

// Component is one named style definition.
type Component struct {
	Name        string `validate:"required,component_name"`
	Description string
	ClassName   string `validate:"omitempty,class_name"`
	ClassNames  substyle.ClassNames
	// Default is merged below Style, whatever modifiers are selected.
	Default substyle.Tree
	// Style is the caller style. Declarations from the css key come first.
	Style substyle.Tree
	// Modifiers are selected with the default style on every resolution.
	Modifiers []string `validate:"omitempty,dive,modifier_key"`

	// Line is the line the component starts on.
	Line int
}

// Components keeps components in document order.
type Components []Component

// Names returns the component names in document order.
func (c Components) Names() []string {
	names := make([]string, 0, len(c))
	for _, comp := range c {
		names = append(names, comp.Name)
	}
	return names
}
