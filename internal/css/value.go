// Package css models the scalar stylesheet values a border radius is built from.
package css

import (
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindRaw is text that is neither a number, an identifier, nor an expression.
	KindRaw Kind = iota
	// KindDimension is a number with an optional unit tag.
	KindDimension
	// KindKeyword is a bare identifier such as a shape category name.
	KindKeyword
	// KindExpression is a var() or calc() expression resolved by the browser.
	KindExpression
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDimension:
		return "dimension"
	case KindKeyword:
		return "keyword"
	case KindExpression:
		return "expression"
	default:
		return "raw"
	}
}

// UnitPercent is the unit tag of percentage dimensions.
const UnitPercent = "%"

// formatPrecision matches the number of fractional digits the stylesheet compiler keeps.
const formatPrecision = 10

// Dimension is a number paired with its unit. An empty unit means unitless.
type Dimension struct {
	Quantity float64
	Unit     string
}

// Coefficient returns the bare number with the unit stripped.
func (d Dimension) Coefficient() float64 {
	return d.Quantity
}

// IsPercentage reports whether the dimension is expressed in percent.
func (d Dimension) IsPercentage() bool {
	return d.Unit == UnitPercent
}

// IsZero reports whether the quantity is zero, whatever the unit.
func (d Dimension) IsZero() bool {
	return d.Quantity == 0
}

// Scale returns the dimension multiplied by factor, keeping the unit.
func (d Dimension) Scale(factor float64) Dimension {
	return Dimension{Quantity: d.Quantity * factor, Unit: d.Unit}
}

func (d Dimension) String() string {
	return formatNumber(d.Quantity) + d.Unit
}

// Value is a single CSS scalar: a dimension, a keyword, an expression or raw text.
type Value struct {
	kind Kind
	dim  Dimension
	text string
}

// Length builds a dimension value.
func Length(quantity float64, unit string) Value {
	return Value{kind: KindDimension, dim: Dimension{Quantity: quantity, Unit: unit}}
}

// Percent builds a percentage value.
func Percent(quantity float64) Value {
	return Length(quantity, UnitPercent)
}

// Zero is the unitless zero length used for squared-off corners.
func Zero() Value {
	return Length(0, "")
}

// Keyword builds an identifier value.
func Keyword(name string) Value {
	return Value{kind: KindKeyword, text: name}
}

// Expression builds an opaque var()/calc() value.
func Expression(text string) Value {
	return Value{kind: KindExpression, text: text}
}

// Raw wraps text that fits no other variant.
func Raw(text string) Value {
	return Value{kind: KindRaw, text: text}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Dimension returns the dimension held by v and whether v is a dimension.
func (v Value) Dimension() (Dimension, bool) {
	if v.kind != KindDimension {
		return Dimension{}, false
	}
	return v.dim, true
}

// IsPercentage reports whether v is a percentage dimension.
func (v Value) IsPercentage() bool {
	return v.kind == KindDimension && v.dim.IsPercentage()
}

// IsZero reports whether v is a zero dimension.
func (v Value) IsZero() bool {
	return v.kind == KindDimension && v.dim.IsZero()
}

// Text returns the source text of keyword, expression and raw values.
func (v Value) Text() string {
	if v.kind == KindDimension {
		return v.dim.String()
	}
	return v.text
}

// String renders v as it would appear in a declaration.
func (v Value) String() string {
	return v.Text()
}

// MarshalText renders v for JSON and YAML encoders.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func formatNumber(n float64) string {
	scale := math.Pow(10, formatPrecision)
	rounded := math.Round(n*scale) / scale
	if rounded == 0 {
		return "0"
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
