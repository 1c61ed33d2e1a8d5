package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shapekit/internal/logger"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
	"github.com/alexisbeaulieu97/shapekit/pkg/diff"
	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

type buildOptions struct {
	output string
	check  bool
}

func newBuildCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the border-radius stylesheet for every component",
		Long: `Build resolves every component declared in the shapes file and writes one
rule per selector, plus a mirrored [dir=rtl] rule for rtl_reflexive components.
With --check nothing is written; the command fails if the file on disk differs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Stylesheet path (defaults to the shapes file's output, or stdout)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the stylesheet on disk is out of date")

	return cmd
}

func runBuild(cmd *cobra.Command, rootFlags *rootFlags, opts *buildOptions) error {
	log, err := rootFlags.logger(cmd, "build")
	if err != nil {
		return newCommandError("build", "initializing logger", err, "Use --log-level trace, debug, info, warn or error.")
	}

	path := rootFlags.resolved.Shapes
	cfg, err := loadShapes(cmd, rootFlags)
	if err != nil {
		return err
	}
	if cfg == nil {
		return newCommandError("build", "loading shapes file "+path, fs.ErrNotExist, "Create shapes.yaml or pass --shapes.")
	}

	categories, err := cfg.BuildCategories()
	if err != nil {
		return newCommandError("build", "building categories", err, "Category radii must be absolute lengths or var()/calc() expressions.")
	}
	declarations, err := cfg.Declarations()
	if err != nil {
		return newCommandError("build", "reading components", err, "Check each component's radius, component_height and mask.")
	}

	log.BuildStarted(path, categories.Len(), len(declarations))

	resolver := shape.NewResolver(categories)
	var rules []shape.Rule
	for i, decl := range declarations {
		declared, err := resolver.Declare(decl)
		if err != nil {
			return newCommandError("build", fmt.Sprintf("resolving component %d (%s)", i, decl.Selector), err, "Percentages need component_height; names must be declared categories.")
		}
		log.ForSelector(decl.Selector).RulesResolved(len(declared))
		rules = append(rules, declared...)
	}

	stylesheet := []byte(shape.RenderStylesheet(rules))

	output := opts.output
	if output == "" && cfg.Output != "" {
		output = cfg.Output
		if !filepath.IsAbs(output) {
			output = filepath.Join(filepath.Dir(path), output)
		}
	}

	if opts.check {
		return checkStylesheet(cmd, log, output, stylesheet)
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(stylesheet)
		return err
	}

	if err := os.WriteFile(output, stylesheet, 0o644); err != nil {
		return newCommandError("build", "writing "+output, err, "Check that the output directory exists and is writable.")
	}

	log.StylesheetWritten(output, len(rules))
	return nil
}

func checkStylesheet(cmd *cobra.Command, log *logger.Logger, output string, stylesheet []byte) error {
	if output == "" {
		return newCommandError("build", "checking stylesheet", errors.New("no output path"), "Pass --output or set output in the shapes file.")
	}

	existing, err := os.ReadFile(output)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newCommandError("build", "reading "+output, err, "Check the file permissions.")
	}

	text, stats := diff.Compare(existing, stylesheet, output, "generated")
	if !stats.Changed() {
		log.Info("stylesheet up to date")
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return shapeerrors.NewDriftError(output, text)
}
