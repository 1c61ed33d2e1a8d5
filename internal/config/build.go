package config

import (
	"github.com/alexisbeaulieu97/shapekit/internal/css"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// BuildCategories turns the declared presets into resolver categories. A
// document without categories gets the stock presets.
func (c *Config) BuildCategories() (shape.Categories, error) {
	if len(c.Categories) == 0 {
		return shape.DefaultCategories(), nil
	}

	presets := make([]shape.Category, 0, len(c.Categories))
	for _, spec := range c.Categories {
		radius, err := shape.ParseRadius(spec.Radius)
		if err != nil {
			return shape.Categories{}, shapeerrors.NewValidationError(fieldForCategory(spec.Name), err.Error(), err)
		}
		presets = append(presets, shape.Category{
			Name:           spec.Name,
			Radius:         radius,
			CustomProperty: spec.CustomProperty,
		})
	}

	return shape.NewCategories(presets...)
}

// Declarations converts components into resolver declarations, in document order.
func (c *Config) Declarations() ([]shape.Declaration, error) {
	out := make([]shape.Declaration, 0, len(c.Components))
	for i, component := range c.Components {
		decl, err := component.Declaration()
		if err != nil {
			return nil, shapeerrors.NewValidationError(fieldForComponent(i, "radius"), err.Error(), err)
		}
		out = append(out, decl)
	}
	return out, nil
}

// Declaration parses the component's textual fields.
func (c Component) Declaration() (shape.Declaration, error) {
	radius, err := shape.ParseRadius(c.Radius)
	if err != nil {
		return shape.Declaration{}, err
	}

	decl := shape.Declaration{
		Selector:     c.Selector,
		Radius:       radius,
		RTLReflexive: c.RTLReflexive,
	}

	if c.ComponentHeight != "" {
		height, err := css.ParseDimension(c.ComponentHeight)
		if err != nil {
			return shape.Declaration{}, err
		}
		decl.ComponentHeight = &height
	}

	if c.Mask != nil {
		decl.Mask = append(shape.Mask(nil), c.Mask...)
	}

	return decl, nil
}
