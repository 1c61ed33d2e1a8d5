package shape

import (
	"fmt"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// ResolvePercentageRadius converts percentage corners into absolute lengths
// for a component of fixed height: height * (percentage / 100). Other values
// pass through untouched and the scalar or list shape is preserved.
func ResolvePercentageRadius(componentHeight css.Dimension, radius Radius) (Radius, error) {
	if err := radius.checkLength("radius"); err != nil {
		return Radius{}, err
	}
	if componentHeight.IsPercentage() {
		return Radius{}, shapeerrors.NewValidationError("component_height",
			fmt.Sprintf("component height %s must be an absolute length", componentHeight), nil)
	}

	return radius.mapValues(func(_ int, value css.Value) (css.Value, error) {
		dim, ok := value.Dimension()
		if !ok || !dim.IsPercentage() {
			return value, nil
		}
		resolved := componentHeight.Scale(dim.Coefficient() / 100)
		return css.Length(resolved.Quantity, resolved.Unit), nil
	})
}
