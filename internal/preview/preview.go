// Package preview draws a terminal box whose corners show which corners of a
// resolved radius are rounded.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
)

const defaultWidth = 24

var cornerNames = [shape.MaxCorners]string{"top-left", "top-right", "bottom-right", "bottom-left"}

// Options controls rendering.
type Options struct {
	// ASCII swaps box-drawing glyphs for plain characters.
	ASCII bool
	// Width is the inner width of the box; zero picks a default.
	Width int
}

type glyphs struct {
	square  [shape.MaxCorners]string
	rounded [shape.MaxCorners]string
	base    lipgloss.Border
}

var (
	unicodeGlyphs = glyphs{
		square:  [shape.MaxCorners]string{"┌", "┐", "┘", "└"},
		rounded: [shape.MaxCorners]string{"╭", "╮", "╯", "╰"},
		base:    lipgloss.NormalBorder(),
	}
	asciiGlyphs = glyphs{
		square:  [shape.MaxCorners]string{"+", "+", "+", "+"},
		rounded: [shape.MaxCorners]string{"/", "\\", "/", "\\"},
		base:    lipgloss.Border{Top: "-", Bottom: "-", Left: "|", Right: "|"},
	}
)

// Render draws radius as a box followed by one line per corner value.
func Render(radius shape.Radius, opts Options) (string, error) {
	corners, err := radius.Expand()
	if err != nil {
		return "", err
	}

	set := unicodeGlyphs
	if opts.ASCII {
		set = asciiGlyphs
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	border := set.base
	picks := [shape.MaxCorners]*string{&border.TopLeft, &border.TopRight, &border.BottomRight, &border.BottomLeft}
	for i, corner := range corners {
		if IsRounded(corner) {
			*picks[i] = set.rounded[i]
		} else {
			*picks[i] = set.square[i]
		}
	}

	box := lipgloss.NewStyle().
		Border(border).
		Width(width).
		Align(lipgloss.Center).
		Render(radius.String())

	var b strings.Builder
	b.WriteString(box)
	b.WriteString("\n")
	for i, corner := range corners {
		fmt.Fprintf(&b, "%-13s %s\n", cornerNames[i]+":", corner)
	}
	return b.String(), nil
}

// IsRounded reports whether a corner value draws a curve. Expressions are
// assumed non-zero since they resolve in the browser.
func IsRounded(value css.Value) bool {
	switch value.Kind() {
	case css.KindDimension:
		return !value.IsZero()
	case css.KindExpression:
		return true
	default:
		return false
	}
}
