// Package flakiness loads the visual-diff retry policy used by screenshot
// tests and answers which retry settings apply to a browser and page.
package flakiness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/alexisbeaulieu97/shapekit/internal/config"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

// Document mirrors the JSON file layout.
type Document struct {
	FlakyTests Settings `json:"flaky_tests"`
}

// Settings holds the global defaults and the ordered override rules.
type Settings struct {
	DefaultConfig   RetryConfig `json:"default_config"`
	ConfigOverrides []Override  `json:"config_overrides,omitempty" validate:"omitempty,dive"`
}

// RetryConfig is the effective retry behaviour for a screenshot.
type RetryConfig struct {
	MaxAutoRetries                 int     `json:"max_auto_retries" validate:"min=0,max=100"`
	MinChangedPixelCount           int     `json:"min_changed_pixel_count" validate:"min=0"`
	MaxChangedPixelFractionToRetry float64 `json:"max_changed_pixel_fraction_to_retry" validate:"min=0,max=1"`
	FontFaceObserverTimeoutMs      int     `json:"font_face_observer_timeout_ms" validate:"min=0"`
	FontsLoadedReflowDelayMs       int     `json:"fonts_loaded_reflow_delay_ms" validate:"min=0"`
}

// PartialConfig replaces only the fields it sets.
type PartialConfig struct {
	MaxAutoRetries                 *int     `json:"max_auto_retries,omitempty" validate:"omitempty,min=0,max=100"`
	MinChangedPixelCount           *int     `json:"min_changed_pixel_count,omitempty" validate:"omitempty,min=0"`
	MaxChangedPixelFractionToRetry *float64 `json:"max_changed_pixel_fraction_to_retry,omitempty" validate:"omitempty,min=0,max=1"`
	FontFaceObserverTimeoutMs      *int     `json:"font_face_observer_timeout_ms,omitempty" validate:"omitempty,min=0"`
	FontsLoadedReflowDelayMs       *int     `json:"fonts_loaded_reflow_delay_ms,omitempty" validate:"omitempty,min=0"`
}

// Override adjusts retry behaviour for screenshots whose browser and URL match.
// An empty regex matches anything, but at least one must be present.
type Override struct {
	Description     string         `json:"description,omitempty"`
	BrowserRegex    string         `json:"browser_regex,omitempty" validate:"required_without=URLRegex,omitempty,regexp"`
	URLRegex        string         `json:"url_regex,omitempty" validate:"omitempty,regexp"`
	Config          *PartialConfig `json:"config,omitempty" validate:"omitempty"`
	RetriesDisabled bool           `json:"retries_disabled,omitempty"`
}

type compiledOverride struct {
	Override
	browser *regexp.Regexp
	url     *regexp.Regexp
}

func (o compiledOverride) matches(browser, url string) bool {
	if o.browser != nil && !o.browser.MatchString(browser) {
		return false
	}
	if o.url != nil && !o.url.MatchString(url) {
		return false
	}
	return true
}

// Policy is a validated document with compiled matchers. It is immutable.
type Policy struct {
	defaults  RetryConfig
	overrides []compiledOverride
}

// Load reads and validates a policy file.
func Load(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, shapeerrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates policy JSON. Unknown fields are rejected.
func Parse(data []byte, path string) (*Policy, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return nil, shapeerrors.NewParseError(path, lineForError(data, err), err)
	}

	return NewPolicy(doc.FlakyTests)
}

// NewPolicy validates settings and compiles the override matchers.
func NewPolicy(settings Settings) (*Policy, error) {
	if err := config.ValidateStruct(settings); err != nil {
		return nil, err
	}

	policy := &Policy{defaults: settings.DefaultConfig}
	for i, override := range settings.ConfigOverrides {
		field := fmt.Sprintf("config_overrides[%d]", i)
		if override.Config == nil && !override.RetriesDisabled {
			return nil, shapeerrors.NewValidationError(field, "override must set config or retries_disabled", nil)
		}

		compiled := compiledOverride{Override: override}
		var err error
		if override.BrowserRegex != "" {
			if compiled.browser, err = regexp.Compile(override.BrowserRegex); err != nil {
				return nil, shapeerrors.NewValidationError(field+".browser_regex", err.Error(), err)
			}
		}
		if override.URLRegex != "" {
			if compiled.url, err = regexp.Compile(override.URLRegex); err != nil {
				return nil, shapeerrors.NewValidationError(field+".url_regex", err.Error(), err)
			}
		}
		policy.overrides = append(policy.overrides, compiled)
	}

	return policy, nil
}

// Defaults returns the global retry settings.
func (p *Policy) Defaults() RetryConfig {
	return p.defaults
}

// Matching lists the overrides that apply to a screenshot, in file order.
func (p *Policy) Matching(browser, url string) []Override {
	var out []Override
	for _, override := range p.overrides {
		if override.matches(browser, url) {
			out = append(out, override.Override)
		}
	}
	return out
}

// For returns the effective settings: defaults with every matching override
// applied in file order.
func (p *Policy) For(browser, url string) RetryConfig {
	cfg := p.defaults
	for _, override := range p.Matching(browser, url) {
		cfg = cfg.apply(override)
	}
	return cfg
}

func (c RetryConfig) apply(o Override) RetryConfig {
	if partial := o.Config; partial != nil {
		if partial.MaxAutoRetries != nil {
			c.MaxAutoRetries = *partial.MaxAutoRetries
		}
		if partial.MinChangedPixelCount != nil {
			c.MinChangedPixelCount = *partial.MinChangedPixelCount
		}
		if partial.MaxChangedPixelFractionToRetry != nil {
			c.MaxChangedPixelFractionToRetry = *partial.MaxChangedPixelFractionToRetry
		}
		if partial.FontFaceObserverTimeoutMs != nil {
			c.FontFaceObserverTimeoutMs = *partial.FontFaceObserverTimeoutMs
		}
		if partial.FontsLoadedReflowDelayMs != nil {
			c.FontsLoadedReflowDelayMs = *partial.FontsLoadedReflowDelayMs
		}
	}
	if o.RetriesDisabled {
		c.MaxAutoRetries = 0
	}
	return c
}

func lineForError(data []byte, err error) int {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}
