package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config represents a shapes.yaml document: category presets plus the
// component selectors whose radius should be generated.
type Config struct {
	Version    string       `yaml:"version" validate:"required,semver"`
	Output     string       `yaml:"output,omitempty"`
	Categories CategoryList `yaml:"categories,omitempty" validate:"omitempty,dive"`
	Components []Component  `yaml:"components" validate:"required,min=1,dive"`
}

// CategorySpec declares one named radius preset.
type CategorySpec struct {
	Name           string `yaml:"-" validate:"required,category_name"`
	Radius         string `yaml:"radius" validate:"required,css_radius"`
	CustomProperty string `yaml:"custom_property,omitempty" validate:"omitempty,css_ident"`
}

// CategoryList keeps categories in the order they appear in the document.
type CategoryList []CategorySpec

// UnmarshalYAML decodes a mapping of name to preset. A preset may be a bare
// radius ("small: 4px") or a mapping with radius and custom_property.
func (l *CategoryList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: categories must be a mapping of name to radius", value.Line)
	}

	out := make(CategoryList, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		node := value.Content[i+1]

		var spec CategorySpec
		switch node.Kind {
		case yaml.ScalarNode:
			spec.Radius = node.Value
		default:
			if err := node.Decode(&spec); err != nil {
				return err
			}
		}
		spec.Name = key.Value
		out = append(out, spec)
	}

	*l = out
	return nil
}

// Component describes the radius a selector receives.
type Component struct {
	Selector        string `yaml:"selector" validate:"required,selector"`
	Radius          string `yaml:"radius" validate:"required,css_radius"`
	ComponentHeight string `yaml:"component_height,omitempty" validate:"omitempty,css_length"`
	Mask            []int  `yaml:"mask,omitempty" validate:"omitempty,dive,oneof=0 1"`
	RTLReflexive    bool   `yaml:"rtl_reflexive,omitempty"`
}
