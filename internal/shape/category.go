package shape

import (
	"fmt"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// Category is a named radius preset such as "small" or "large".
type Category struct {
	Name   string
	Radius Radius
	// CustomProperty, when set, makes the category resolve to
	// var(--CustomProperty, Radius) so themes can override it at runtime.
	CustomProperty string
}

// Value returns the radius the category name stands for.
func (c Category) Value() Radius {
	if c.CustomProperty == "" {
		return c.Radius
	}
	return Scalar(css.Expression(fmt.Sprintf("var(--%s, %s)", c.CustomProperty, c.Radius)))
}

// Categories is an immutable lookup from category name to preset. The zero
// value knows no categories.
type Categories struct {
	entries map[string]Category
	order   []string
}

// DefaultCategories returns the stock presets: small and medium are 4px, large is square.
func DefaultCategories() Categories {
	categories, err := NewCategories(
		Category{Name: "small", Radius: Scalar(css.Length(4, "px"))},
		Category{Name: "medium", Radius: Scalar(css.Length(4, "px"))},
		Category{Name: "large", Radius: Scalar(css.Zero())},
	)
	if err != nil {
		panic(err)
	}
	return categories
}

// NewCategories validates presets and builds the lookup. Preset radii must be
// concrete: at most four non-percentage lengths or var()/calc() expressions.
// A custom property can only wrap a single value, since var() yields one
// token to the corner it fills.
func NewCategories(presets ...Category) (Categories, error) {
	out := Categories{
		entries: make(map[string]Category, len(presets)),
		order:   make([]string, 0, len(presets)),
	}

	for _, preset := range presets {
		field := fmt.Sprintf("categories.%s", preset.Name)
		if preset.Name == "" {
			return Categories{}, shapeerrors.NewValidationError("categories", "category name is required", nil)
		}
		if _, exists := out.entries[preset.Name]; exists {
			return Categories{}, shapeerrors.NewValidationError(field, fmt.Sprintf("duplicate category %q", preset.Name), nil)
		}
		if err := preset.Radius.checkLength(field); err != nil {
			return Categories{}, err
		}
		for _, value := range preset.Radius.values {
			if !isConcrete(value) {
				return Categories{}, shapeerrors.NewUnsupportedRadiusError(field, value.String())
			}
		}
		if preset.CustomProperty != "" && preset.Radius.Len() > 1 {
			return Categories{}, shapeerrors.NewValidationError(field+".custom_property",
				fmt.Sprintf("custom property %q cannot wrap the %d-corner radius %q", preset.CustomProperty, preset.Radius.Len(), preset.Radius),
				shapeerrors.ErrUnsupportedRadius)
		}

		out.entries[preset.Name] = preset
		out.order = append(out.order, preset.Name)
	}

	return out, nil
}

// Lookup returns the preset registered under name.
func (c Categories) Lookup(name string) (Category, bool) {
	category, ok := c.entries[name]
	return category, ok
}

// Names lists category names in declaration order.
func (c Categories) Names() []string {
	return append([]string(nil), c.order...)
}

// Len returns the number of presets.
func (c Categories) Len() int {
	return len(c.order)
}

// isConcrete accepts non-percentage dimensions and opaque expressions.
func isConcrete(value css.Value) bool {
	switch value.Kind() {
	case css.KindDimension:
		return !value.IsPercentage()
	case css.KindExpression:
		return true
	default:
		return false
	}
}
