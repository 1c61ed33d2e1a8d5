package css

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

var (
	dimensionPattern = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d*)?|\.\d+))(%|[a-zA-Z]+)?$`)
	keywordPattern   = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*$`)
)

// IsExpression reports whether text holds a var() or calc() call.
func IsExpression(text string) bool {
	return strings.Contains(text, "var(") || strings.Contains(text, "calc(")
}

// ParseValue classifies a single token of stylesheet text.
func ParseValue(text string) (Value, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Value{}, shapeerrors.NewValidationError("value", "value is empty", nil)
	}

	if IsExpression(trimmed) {
		return Expression(trimmed), nil
	}

	if matches := dimensionPattern.FindStringSubmatch(trimmed); matches != nil {
		quantity, err := strconv.ParseFloat(matches[1], 64)
		if err != nil {
			return Value{}, shapeerrors.NewValidationError("value", fmt.Sprintf("invalid number %q", matches[1]), err)
		}
		return Length(quantity, strings.ToLower(matches[2])), nil
	}

	if keywordPattern.MatchString(trimmed) {
		return Keyword(trimmed), nil
	}

	return Raw(trimmed), nil
}

// ParseDimension parses text that must be a number with an optional unit.
func ParseDimension(text string) (Dimension, error) {
	value, err := ParseValue(text)
	if err != nil {
		return Dimension{}, err
	}
	dim, ok := value.Dimension()
	if !ok {
		return Dimension{}, shapeerrors.NewValidationError("value", fmt.Sprintf("%q is not a number", text), nil)
	}
	return dim, nil
}

// SplitTokens splits shorthand text on whitespace outside parentheses, so
// calc(1px + 2px) stays a single token.
func SplitTokens(text string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		depth   int
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, shapeerrors.NewValidationError("value", fmt.Sprintf("unbalanced parentheses in %q", text), nil)
			}
			current.WriteRune(r)
		case unicode.IsSpace(r) && depth == 0:
			flush()
		default:
			current.WriteRune(r)
		}
	}

	if depth != 0 {
		return nil, shapeerrors.NewValidationError("value", fmt.Sprintf("unbalanced parentheses in %q", text), nil)
	}
	flush()

	return tokens, nil
}
