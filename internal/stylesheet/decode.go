package stylesheet

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/substyle/internal/cssdecl"
	"github.com/alexisbeaulieu97/substyle/pkg/substyle"
)

// UnmarshalYAML decodes the components mapping, keeping document order.
func (c *Components) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: components must be a mapping of name to definition", value.Line)
	}

	out := make(Components, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]

		var comp Component
		if err := body.Decode(&comp); err != nil {
			return err
		}
		comp.Name = key.Value
		comp.Line = key.Line
		out = append(out, comp)
	}
	*c = out
	return nil
}

// UnmarshalYAML decodes a component body. Style trees keep their key order.
func (c *Component) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: component must be a mapping", value.Line)
	}

	type baseComponent struct {
		Description string    `yaml:"description"`
		ClassName   string    `yaml:"className"`
		ClassNames  yaml.Node `yaml:"classNames"`
		Default     yaml.Node `yaml:"default"`
		Style       yaml.Node `yaml:"style"`
		CSS         string    `yaml:"css"`
		Modifiers   []string  `yaml:"modifiers"`
	}

	var base baseComponent
	if err := value.Decode(&base); err != nil {
		return err
	}

	classNames, err := classNamesFromNode(&base.ClassNames)
	if err != nil {
		return err
	}
	defaultStyle, err := treeFromNode(&base.Default)
	if err != nil {
		return err
	}
	style, err := treeFromNode(&base.Style)
	if err != nil {
		return err
	}
	if base.CSS != "" {
		declared, err := cssdecl.Parse(base.CSS)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		style = substyle.Merge(declared, style)
	}

	c.Description = base.Description
	c.ClassName = base.ClassName
	c.ClassNames = classNames
	c.Default = defaultStyle
	c.Style = style
	c.Modifiers = base.Modifiers
	return nil
}

// treeFromNode converts a YAML mapping into a Tree. A missing or null node
// yields a nil Tree.
func treeFromNode(node *yaml.Node) (substyle.Tree, error) {
	node = resolveAlias(node)
	switch {
	case node.Kind == 0:
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return nil, nil
	case node.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("line %d: style must be a mapping, got %s", node.Line, node.ShortTag())
	}

	tree := make(substyle.Tree, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, raw := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: style keys must be scalars", key.Line)
		}
		value, err := valueFromNode(raw)
		if err != nil {
			return nil, err
		}
		tree = tree.Set(key.Value, value)
	}
	return tree, nil
}

func valueFromNode(node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.MappingNode:
		tree, err := treeFromNode(node)
		if err != nil {
			return nil, err
		}
		return tree, nil
	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func classNamesFromNode(node *yaml.Node) (substyle.ClassNames, error) {
	node = resolveAlias(node)
	switch {
	case node.Kind == 0:
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return nil, nil
	case node.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("line %d: classNames must be a mapping", node.Line)
	}

	out := make(substyle.ClassNames, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], resolveAlias(node.Content[i+1])
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: class name for %q must be a string", value.Line, key.Value)
		}
		class := value.Value
		if value.Tag == "!!null" {
			class = ""
		}
		out = append(out, substyle.ClassMapping{Name: key.Value, Class: class})
	}
	return out, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
