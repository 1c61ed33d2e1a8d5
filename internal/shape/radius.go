// Package shape resolves border-radius values for the shape design-system
// primitive: category lookup, percentage resolution, corner masking and
// right-to-left flipping.
//
// A Radius is either a single scalar or a list of corner values in CSS
// shorthand order: top-left, top-right, bottom-right, bottom-left. Lists
// longer than four corners are rejected by every operation.
package shape

import (
	"strings"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// MaxCorners is the longest corner list a border-radius shorthand accepts.
const MaxCorners = 4

// Radius is a scalar radius or an ordered list of corner radii.
type Radius struct {
	values []css.Value
	list   bool
}

// Scalar wraps a single value.
func Scalar(value css.Value) Radius {
	return Radius{values: []css.Value{value}}
}

// Corners builds a corner list in shorthand order.
func Corners(values ...css.Value) Radius {
	return Radius{values: append([]css.Value(nil), values...), list: true}
}

// ParseRadius reads shorthand text. A single token yields a scalar; several
// tokens yield a corner list. Length limits are enforced by the operations,
// not here.
func ParseRadius(text string) (Radius, error) {
	tokens, err := css.SplitTokens(text)
	if err != nil {
		return Radius{}, err
	}
	if len(tokens) == 0 {
		return Radius{}, shapeerrors.NewValidationError("radius", "radius is empty", nil)
	}

	values := make([]css.Value, 0, len(tokens))
	for _, token := range tokens {
		value, err := css.ParseValue(token)
		if err != nil {
			return Radius{}, err
		}
		values = append(values, value)
	}

	if len(values) == 1 {
		return Scalar(values[0]), nil
	}
	return Corners(values...), nil
}

// MustParseRadius is ParseRadius for literals known to be valid. It panics on error.
func MustParseRadius(text string) Radius {
	r, err := ParseRadius(text)
	if err != nil {
		panic(err)
	}
	return r
}

// IsList reports whether r holds a corner list rather than a scalar.
func (r Radius) IsList() bool {
	return r.list
}

// IsZero reports whether r holds no values at all.
func (r Radius) IsZero() bool {
	return len(r.values) == 0
}

// Len returns the number of values; a scalar has length one.
func (r Radius) Len() int {
	return len(r.values)
}

// Values returns a copy of the values in shorthand order.
func (r Radius) Values() []css.Value {
	return append([]css.Value(nil), r.values...)
}

// At returns the i-th value.
func (r Radius) At(i int) css.Value {
	return r.values[i]
}

// Equal reports whether both radii have the same shape and values.
func (r Radius) Equal(other Radius) bool {
	if r.list != other.list || len(r.values) != len(other.values) {
		return false
	}
	for i := range r.values {
		if r.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// String renders r as border-radius shorthand.
func (r Radius) String() string {
	parts := make([]string, len(r.values))
	for i, value := range r.values {
		parts[i] = value.String()
	}
	return strings.Join(parts, " ")
}

// MarshalText renders r for JSON and YAML encoders.
func (r Radius) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Expand normalises r to four corners following shorthand expansion:
// one value repeats, two alternate, three mirror the second onto bottom-left.
func (r Radius) Expand() ([MaxCorners]css.Value, error) {
	var out [MaxCorners]css.Value
	if err := r.checkLength("radius"); err != nil {
		return out, err
	}

	v := r.values
	switch len(v) {
	case 1:
		out = [MaxCorners]css.Value{v[0], v[0], v[0], v[0]}
	case 2:
		out = [MaxCorners]css.Value{v[0], v[1], v[0], v[1]}
	case 3:
		out = [MaxCorners]css.Value{v[0], v[1], v[2], v[1]}
	default:
		out = [MaxCorners]css.Value{v[0], v[1], v[2], v[3]}
	}
	return out, nil
}

func (r Radius) checkLength(field string) error {
	if len(r.values) == 0 {
		return shapeerrors.NewValidationError(field, "radius is empty", nil)
	}
	if len(r.values) > MaxCorners {
		return shapeerrors.NewShapeLengthError(field, len(r.values))
	}
	return nil
}

// mapValues applies fn to every value, preserving scalar or list shape.
func (r Radius) mapValues(fn func(i int, v css.Value) (css.Value, error)) (Radius, error) {
	out := Radius{values: make([]css.Value, len(r.values)), list: r.list}
	for i, value := range r.values {
		mapped, err := fn(i, value)
		if err != nil {
			return Radius{}, err
		}
		out.values[i] = mapped
	}
	return out, nil
}
