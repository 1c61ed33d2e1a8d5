package flakiness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

const policyJSON = `{
  "flaky_tests": {
    "default_config": {
      "max_auto_retries": 3,
      "min_changed_pixel_count": 4,
      "max_changed_pixel_fraction_to_retry": 0.01,
      "font_face_observer_timeout_ms": 3000,
      "fonts_loaded_reflow_delay_ms": 100
    },
    "config_overrides": [
      {
        "description": "Edge renders menu shadows inconsistently",
        "browser_regex": "edge",
        "url_regex": "/menu/",
        "config": {"max_auto_retries": 5, "max_changed_pixel_fraction_to_retry": 0.05}
      },
      {
        "description": "IE 11 diffs are never flaky",
        "browser_regex": "ie@11",
        "retries_disabled": true
      },
      {
        "url_regex": "/fonts/",
        "config": {"fonts_loaded_reflow_delay_ms": 500}
      }
    ]
  }
}`

func TestPolicyFor(t *testing.T) {
	t.Parallel()

	policy, err := Parse([]byte(policyJSON), "diffing.json")
	require.NoError(t, err)

	defaults := RetryConfig{
		MaxAutoRetries:                 3,
		MinChangedPixelCount:           4,
		MaxChangedPixelFractionToRetry: 0.01,
		FontFaceObserverTimeoutMs:      3000,
		FontsLoadedReflowDelayMs:       100,
	}

	cases := []struct {
		name    string
		browser string
		url     string
		want    func() RetryConfig
	}{
		{
			name:    "no override matches",
			browser: "chrome@latest",
			url:     "/button/classes/baseline.html",
			want:    func() RetryConfig { return defaults },
		},
		{
			name:    "both regexes must match",
			browser: "edge@latest",
			url:     "/button/classes/baseline.html",
			want:    func() RetryConfig { return defaults },
		},
		{
			name:    "config replaces only set fields",
			browser: "edge@latest",
			url:     "/menu/classes/baseline.html",
			want: func() RetryConfig {
				cfg := defaults
				cfg.MaxAutoRetries = 5
				cfg.MaxChangedPixelFractionToRetry = 0.05
				return cfg
			},
		},
		{
			name:    "retries disabled",
			browser: "ie@11",
			url:     "/fonts/menu/index.html",
			want: func() RetryConfig {
				cfg := defaults
				cfg.MaxAutoRetries = 0
				cfg.FontsLoadedReflowDelayMs = 500
				return cfg
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := policy.For(tc.browser, tc.url)
			if diff := cmp.Diff(tc.want(), got); diff != "" {
				t.Errorf("For(%q, %q) mismatch (-want +got):\n%s", tc.browser, tc.url, diff)
			}
		})
	}

	require.Equal(t, defaults, policy.Defaults())
	require.Len(t, policy.Matching("ie@11", "/fonts/x"), 2)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		field    string
	}{
		{
			name:     "negative retries",
			contents: `{"flaky_tests": {"default_config": {"max_auto_retries": -1}}}`,
			field:    "default_config.max_auto_retries",
		},
		{
			name:     "fraction above one",
			contents: `{"flaky_tests": {"default_config": {"max_changed_pixel_fraction_to_retry": 1.5}}}`,
			field:    "default_config.max_changed_pixel_fraction_to_retry",
		},
		{
			name:     "override without regex",
			contents: `{"flaky_tests": {"config_overrides": [{"retries_disabled": true}]}}`,
			field:    "config_overrides[0].browser_regex",
		},
		{
			name:     "override with bad regex",
			contents: `{"flaky_tests": {"config_overrides": [{"url_regex": "(", "retries_disabled": true}]}}`,
			field:    "config_overrides[0].url_regex",
		},
		{
			name:     "override without effect",
			contents: `{"flaky_tests": {"config_overrides": [{"browser_regex": "firefox"}]}}`,
			field:    "config_overrides[0]",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.contents), "diffing.json")
			var validationErr *shapeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestParseReportsSyntaxLine(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("{\n  \"flaky_tests\": {\n    oops\n}"), "diffing.json")
	var parseErr *shapeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)

	_, err = Parse([]byte(`{"flaky_tests": {"unknown": 1}}`), "diffing.json")
	require.ErrorAs(t, err, &parseErr)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "diffing.json")
	require.NoError(t, os.WriteFile(path, []byte(policyJSON), 0o644))

	policy, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, policy.Defaults().MaxAutoRetries)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	var parseErr *shapeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	cfg := RetryConfig{MaxAutoRetries: 2, MinChangedPixelCount: 5, MaxChangedPixelFractionToRetry: 0.01}

	cases := []struct {
		name    string
		changed int
		total   int
		attempt int
		want    Verdict
	}{
		{name: "identical", changed: 0, total: 1000, want: VerdictPass},
		{name: "below noise floor", changed: 4, total: 1000, want: VerdictPass},
		{name: "small diff retries", changed: 10, total: 1000, want: VerdictRetry},
		{name: "small diff out of attempts", changed: 10, total: 1000, attempt: 2, want: VerdictFail},
		{name: "large diff fails", changed: 500, total: 1000, want: VerdictFail},
		{name: "unknown total fails", changed: 10, total: 0, want: VerdictFail},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, cfg.Evaluate(tc.changed, tc.total, tc.attempt), tc.name)
	}

	require.Equal(t, "retry", VerdictRetry.String())
	require.Equal(t, "pass", VerdictPass.String())
	require.Equal(t, "fail", VerdictFail.String())
}
