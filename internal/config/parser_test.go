package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

const validYAML = `version: "1.0"
output: dist/shape.css
categories:
  small: 4px
  medium:
    radius: 8px
    custom_property: mdc-shape-medium
  large: {radius: "0"}
components:
  - selector: .mdc-button
    radius: small
  - selector: .mdc-chip
    radius: 50%
    component_height: 32px
  - selector: .mdc-drawer
    radius: large medium
    mask: [0, 1, 1, 0]
    rtl_reflexive: true
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "dist/shape.css", cfg.Output)
				require.Len(t, cfg.Categories, 3)
				require.Equal(t, "small", cfg.Categories[0].Name)
				require.Equal(t, "4px", cfg.Categories[0].Radius)
				require.Equal(t, "mdc-shape-medium", cfg.Categories[1].CustomProperty)
				require.Equal(t, "large", cfg.Categories[2].Name)
				require.Len(t, cfg.Components, 3)
				require.Equal(t, []int{0, 1, 1, 0}, cfg.Components[2].Mask)
				require.True(t, cfg.Components[2].RTLReflexive)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "version: [1, 0]\ncomponents: {",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *shapeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "categories must be a mapping",
			contents: "version: \"1.0\"\ncategories: [small]\ncomponents:\n  - selector: .a\n    radius: small\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *shapeerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "mapping")
			},
		},
		{
			name:     "missing components returns validation error",
			contents: "version: \"1.0\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *shapeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "components", validationErr.Field)
			},
		},
		{
			name:     "bad version returns validation error",
			contents: "version: beta\ncomponents:\n  - selector: .a\n    radius: small\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *shapeerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *shapeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("version: \"1.0\"\ncomponents:\n  - selector: .a\n\tradius: small\n"), "tabs.yaml")
	var parseErr *shapeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Positive(t, parseErr.Line)

	require.Equal(t, 0, extractLine(nil))
}

func TestBuildFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(validYAML), "shapes.yaml")
	require.NoError(t, err)

	categories, err := cfg.BuildCategories()
	require.NoError(t, err)
	require.Equal(t, []string{"small", "medium", "large"}, categories.Names())

	medium, ok := categories.Lookup("medium")
	require.True(t, ok)
	require.Equal(t, "var(--mdc-shape-medium, 8px)", medium.Value().String())

	decls, err := cfg.Declarations()
	require.NoError(t, err)
	require.Len(t, decls, 3)
	require.Nil(t, decls[0].ComponentHeight)
	require.NotNil(t, decls[1].ComponentHeight)
	require.Equal(t, "32px", decls[1].ComponentHeight.String())
	require.Equal(t, "0 1 1 0", decls[2].Mask.String())
}

func TestBuildCategoriesDefaultsWhenEmpty(t *testing.T) {
	t.Parallel()

	cfg := &Config{Version: "1.0"}
	categories, err := cfg.BuildCategories()
	require.NoError(t, err)
	require.Equal(t, []string{"small", "medium", "large"}, categories.Names())
}

func TestBuildCategoriesRejectsPercentagePreset(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("version: \"1.0\"\ncategories:\n  round: 50%\ncomponents:\n  - selector: .a\n    radius: round\n"), "shapes.yaml")
	require.NoError(t, err)

	_, err = cfg.BuildCategories()
	require.ErrorIs(t, err, shapeerrors.ErrUnsupportedRadius)
}
