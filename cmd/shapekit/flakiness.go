package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shapekit/internal/flakiness"
)

type flakinessOptions struct {
	browser    string
	url        string
	changed    int
	total      int
	attempt    int
	jsonOutput bool
}

func newFlakinessCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &flakinessOptions{}

	cmd := &cobra.Command{
		Use:   "flakiness [policy-file]",
		Short: "Show the screenshot retry settings for a browser and page",
		Long: `Flakiness loads the visual diffing policy and prints the retry settings that
apply to --browser and --url after every matching override. Pass --changed to
also classify a diff as pass, retry or fail.`,
		Example: `  shapekit flakiness --browser chrome --url /components/button
  shapekit flakiness diffing.json --browser firefox --changed 12 --total 40000 --attempt 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rootFlags.resolved.Flakiness
			if len(args) == 1 {
				path = args[0]
			}
			return runFlakiness(cmd, rootFlags, path, opts)
		},
	}

	cmd.Flags().StringVar(&opts.browser, "browser", "", "Browser name matched against browser_regex")
	cmd.Flags().StringVar(&opts.url, "url", "", "Page URL matched against url_regex")
	cmd.Flags().IntVar(&opts.changed, "changed", 0, "Changed pixel count of a diff to classify")
	cmd.Flags().IntVar(&opts.total, "total", 0, "Total pixel count of the screenshot")
	cmd.Flags().IntVar(&opts.attempt, "attempt", 0, "Zero-based capture attempt")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

type flakinessJSONPayload struct {
	Browser  string                `json:"browser"`
	URL      string                `json:"url"`
	Matched  []string              `json:"matched_overrides"`
	Settings flakiness.RetryConfig `json:"settings"`
	Verdict  string                `json:"verdict,omitempty"`
}

func runFlakiness(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *flakinessOptions) error {
	log, err := rootFlags.logger(cmd, "flakiness")
	if err != nil {
		return newCommandError("flakiness", "initializing logger", err, "Use --log-level trace, debug, info, warn or error.")
	}

	policy, err := flakiness.Load(path)
	if err != nil {
		return newCommandError("flakiness", "loading policy "+path, err, "Check the file against the flaky_tests schema.")
	}

	matched := policy.Matching(opts.browser, opts.url)
	settings := policy.For(opts.browser, opts.url)
	log.WithFields(map[string]any{"policy": path, "matched": len(matched)}).Debug("policy resolved")

	labels := make([]string, 0, len(matched))
	for i, override := range matched {
		label := override.Description
		if label == "" {
			label = fmt.Sprintf("override %d", i+1)
		}
		labels = append(labels, label)
	}

	var verdict string
	if cmd.Flags().Changed("changed") {
		verdict = settings.Evaluate(opts.changed, opts.total, opts.attempt).String()
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(flakinessJSONPayload{
			Browser:  opts.browser,
			URL:      opts.url,
			Matched:  labels,
			Settings: settings,
			Verdict:  verdict,
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "max_auto_retries\t%d\n", settings.MaxAutoRetries)
	fmt.Fprintf(writer, "min_changed_pixel_count\t%d\n", settings.MinChangedPixelCount)
	fmt.Fprintf(writer, "max_changed_pixel_fraction_to_retry\t%g\n", settings.MaxChangedPixelFractionToRetry)
	fmt.Fprintf(writer, "font_face_observer_timeout_ms\t%d\n", settings.FontFaceObserverTimeoutMs)
	fmt.Fprintf(writer, "fonts_loaded_reflow_delay_ms\t%d\n", settings.FontsLoadedReflowDelayMs)
	for _, label := range labels {
		fmt.Fprintf(writer, "override\t%s\n", label)
	}
	if verdict != "" {
		fmt.Fprintf(writer, "verdict\t%s\n", verdict)
	}
	return writer.Flush()
}
