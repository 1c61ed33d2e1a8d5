package shape

import "github.com/alexisbeaulieu97/shapekit/internal/css"

// FlipRadius mirrors a radius for right-to-left layouts by swapping the
// horizontally adjacent corners. Scalars and single-value lists have no
// direction and are returned unchanged.
func FlipRadius(radius Radius) (Radius, error) {
	if err := radius.checkLength("radius"); err != nil {
		return Radius{}, err
	}

	v := radius.values
	switch len(v) {
	case 4:
		return Corners(v[1], v[0], v[3], v[2]), nil
	case 3:
		// Value two covers both top-right and bottom-left.
		return Corners(v[1], v[0], v[1], v[2]), nil
	case 2:
		return Corners(v[1], v[0]), nil
	default:
		return Radius{values: []css.Value{v[0]}, list: radius.list}, nil
	}
}
