package shape

import (
	"fmt"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// Resolver turns declared radii into concrete values using an injected set
// of category presets. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	categories Categories
}

// NewResolver returns a Resolver backed by categories.
func NewResolver(categories Categories) *Resolver {
	return &Resolver{categories: categories}
}

// Categories exposes the presets the resolver looks names up in.
func (r *Resolver) Categories() Categories {
	return r.categories
}

// ResolveCategoryOrValue substitutes category names with their presets and
// checks every other value is a usable radius: a non-percentage length or a
// var()/calc() expression. Percentages must be resolved beforehand with
// ResolvePercentageRadius.
func (r *Resolver) ResolveCategoryOrValue(radius Radius) (Radius, error) {
	if err := radius.checkLength("radius"); err != nil {
		return Radius{}, err
	}

	if !radius.list {
		value := radius.values[0]
		if category, ok := r.lookup(value); ok {
			return category.Value(), nil
		}
		if err := validateConcrete("radius", value); err != nil {
			return Radius{}, err
		}
		return radius, nil
	}

	return radius.mapValues(func(i int, value css.Value) (css.Value, error) {
		field := fmt.Sprintf("radius[%d]", i)
		if category, ok := r.lookup(value); ok {
			preset := category.Value()
			if preset.Len() != 1 {
				return css.Value{}, shapeerrors.NewValidationError(field,
					fmt.Sprintf("category %q expands to %d corners and cannot fill a single corner", category.Name, preset.Len()),
					shapeerrors.ErrUnsupportedRadius)
			}
			return preset.values[0], nil
		}
		if err := validateConcrete(field, value); err != nil {
			return css.Value{}, err
		}
		return value, nil
	})
}

func (r *Resolver) lookup(value css.Value) (Category, bool) {
	if value.Kind() != css.KindKeyword {
		return Category{}, false
	}
	return r.categories.Lookup(value.Text())
}

func validateConcrete(field string, value css.Value) error {
	if isConcrete(value) {
		return nil
	}
	return shapeerrors.NewUnsupportedRadiusError(field, value.String())
}
