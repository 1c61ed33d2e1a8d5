package shape

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// RadiusProperty is the declaration every rule emits.
const RadiusProperty = "border-radius"

// Declaration describes the radius a component selector should receive.
type Declaration struct {
	Selector string
	Radius   Radius
	// ComponentHeight resolves percentage corners when set.
	ComponentHeight *css.Dimension
	// Mask squares off corners when set.
	Mask Mask
	// RTLReflexive emits a mirrored rule for right-to-left documents.
	RTLReflexive bool
}

// Rule is a single resolved selector block.
type Rule struct {
	Selector string `json:"selector"`
	Property string `json:"property"`
	Value    Radius `json:"value"`
}

// Declare runs the full pipeline for a component: percentage resolution,
// category lookup, masking, then the optional right-to-left mirror rule.
func (r *Resolver) Declare(decl Declaration) ([]Rule, error) {
	selector := strings.TrimSpace(decl.Selector)
	if selector == "" {
		return nil, shapeerrors.NewValidationError("selector", "selector is required", nil)
	}

	radius, err := r.ResolveRadius(decl.Radius, decl.ComponentHeight, decl.Mask)
	if err != nil {
		return nil, err
	}

	rules := []Rule{{Selector: selector, Property: RadiusProperty, Value: radius}}
	if !decl.RTLReflexive {
		return rules, nil
	}

	flipped, err := FlipRadius(radius)
	if err != nil {
		return nil, err
	}
	if flipped.Equal(radius) || sameCorners(flipped, radius) {
		return rules, nil
	}

	return append(rules, Rule{Selector: rtlSelector(selector), Property: RadiusProperty, Value: flipped}), nil
}

// ResolveRadius applies percentage resolution (when height is non-nil),
// category lookup and masking (when mask is non-nil) in that order.
func (r *Resolver) ResolveRadius(radius Radius, height *css.Dimension, mask Mask) (Radius, error) {
	var err error
	if height != nil {
		radius, err = ResolvePercentageRadius(*height, radius)
		if err != nil {
			return Radius{}, err
		}
	}

	radius, err = r.ResolveCategoryOrValue(radius)
	if err != nil {
		return Radius{}, err
	}

	if mask != nil {
		radius, err = MaskRadius(radius, mask)
		if err != nil {
			return Radius{}, err
		}
	}

	return radius, nil
}

// RenderStylesheet writes rules as CSS blocks separated by blank lines.
func RenderStylesheet(rules []Rule) string {
	var b strings.Builder
	for i, rule := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s {\n  %s: %s;\n}\n", rule.Selector, rule.Property, rule.Value)
	}
	return b.String()
}

// sameCorners compares the four expanded corners so "4px" and "4px 4px" count as equal.
func sameCorners(a, b Radius) bool {
	ea, err := a.Expand()
	if err != nil {
		return false
	}
	eb, err := b.Expand()
	if err != nil {
		return false
	}
	return ea == eb
}

func rtlSelector(selector string) string {
	parts := splitSelectorList(selector)
	out := make([]string, 0, len(parts)*2)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, "[dir=rtl] "+part, part+"[dir=rtl]")
	}
	return strings.Join(out, ", ")
}

// splitSelectorList splits on commas outside parentheses, brackets and quotes,
// so ":is(.a, .b)" and [data-x="a,b"] stay whole.
func splitSelectorList(selector string) []string {
	var (
		parts []string
		depth int
		quote rune
		start int
	)
	for i, r := range selector {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(' || r == '[':
			depth++
		case r == ')' || r == ']':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			parts = append(parts, selector[start:i])
			start = i + 1
		}
	}
	return append(parts, selector[start:])
}
