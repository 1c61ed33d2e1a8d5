package shape

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// Mask selects which corners keep their radius (1) and which are squared off (0),
// in top-left, top-right, bottom-right, bottom-left order.
type Mask []int

// Common masks.
var (
	MaskAll    = Mask{1, 1, 1, 1}
	MaskTop    = Mask{1, 1, 0, 0}
	MaskBottom = Mask{0, 0, 1, 1}
	MaskStart  = Mask{1, 0, 0, 1}
	MaskEnd    = Mask{0, 1, 1, 0}
)

// ParseMask reads flags separated by spaces or commas, e.g. "1 1 0 0".
func ParseMask(text string) (Mask, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	mask := make(Mask, 0, len(fields))
	for _, field := range fields {
		switch field {
		case "0":
			mask = append(mask, 0)
		case "1":
			mask = append(mask, 1)
		default:
			return nil, shapeerrors.NewValidationError("mask", fmt.Sprintf("flag %q must be 0 or 1", field), nil)
		}
	}

	if err := mask.Validate(); err != nil {
		return nil, err
	}
	return mask, nil
}

// Validate checks the mask has four binary flags.
func (m Mask) Validate() error {
	if len(m) != MaxCorners {
		return shapeerrors.NewMaskLengthError("mask", len(m))
	}
	for i, flag := range m {
		if flag != 0 && flag != 1 {
			return shapeerrors.NewValidationError(fmt.Sprintf("mask[%d]", i), fmt.Sprintf("flag %d must be 0 or 1", flag), nil)
		}
	}
	return nil
}

func (m Mask) String() string {
	parts := make([]string, len(m))
	for i, flag := range m {
		parts[i] = fmt.Sprint(flag)
	}
	return strings.Join(parts, " ")
}

// MaskRadius expands radius to four corners and zeroes every corner whose
// mask flag is 0. The result is always a four-value list.
func MaskRadius(radius Radius, mask Mask) (Radius, error) {
	corners, err := radius.Expand()
	if err != nil {
		return Radius{}, err
	}
	if err := mask.Validate(); err != nil {
		return Radius{}, err
	}

	out := make([]css.Value, MaxCorners)
	for i, corner := range corners {
		if mask[i] == 1 {
			out[i] = corner
			continue
		}
		out[i] = css.Zero()
	}
	return Corners(out...), nil
}
