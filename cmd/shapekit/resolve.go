package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	"github.com/alexisbeaulieu97/shapekit/internal/preview"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
)

type resolveOptions struct {
	height     string
	mask       string
	rtl        bool
	preview    bool
	jsonOutput bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <radius>...",
		Short: "Resolve a category name or radius into a concrete border-radius",
		Long: `Resolve runs a radius through the same pipeline a build uses: percentage
corners are resolved against --height, category names are substituted, and
--mask squares off corners. Quote multi-value radii or pass them as separate arguments.`,
		Example: `  shapekit resolve small
  shapekit resolve 50% small --height 36px --mask "1 0 0 1" --rtl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.height, "height", "", "Component height used to resolve percentage corners (e.g. 36px)")
	cmd.Flags().StringVar(&opts.mask, "mask", "", `Corner mask "TL TR BR BL", 1 keeps a corner and 0 squares it`)
	cmd.Flags().BoolVar(&opts.rtl, "rtl", false, "Also print the right-to-left mirrored radius")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Draw the resolved corners")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

type resolveJSONPayload struct {
	Input   string      `json:"input"`
	Radius  string      `json:"radius"`
	Corners []css.Value `json:"corners"`
	RTL     string      `json:"rtl,omitempty"`
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, args []string, opts *resolveOptions) error {
	input, err := parseRadiusArgs(args)
	if err != nil {
		return newCommandError("resolve", "parsing radius", err, "Pass a category name, a length such as 4px, or up to four corner values.")
	}

	var height *css.Dimension
	if opts.height != "" {
		dim, err := css.ParseDimension(opts.height)
		if err != nil {
			return newCommandError("resolve", "parsing --height", err, "Use an absolute length such as 36px.")
		}
		height = &dim
	}

	var mask shape.Mask
	if opts.mask != "" {
		if mask, err = shape.ParseMask(opts.mask); err != nil {
			return newCommandError("resolve", "parsing --mask", err, `Pass four flags, e.g. --mask "1 1 0 0".`)
		}
	}

	resolver, err := loadResolver(cmd, rootFlags)
	if err != nil {
		return err
	}

	radius, err := resolver.ResolveRadius(input, height, mask)
	if err != nil {
		return newCommandError("resolve", fmt.Sprintf("resolving %q", input), err, "Percentages need --height; other values must be categories, lengths, or var()/calc().")
	}

	var flipped shape.Radius
	if opts.rtl {
		if flipped, err = shape.FlipRadius(radius); err != nil {
			return newCommandError("resolve", "mirroring radius", err, "Use at most four corner values.")
		}
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		payload := resolveJSONPayload{Input: input.String(), Radius: radius.String(), Corners: radius.Values()}
		if opts.rtl {
			payload.RTL = flipped.String()
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	if opts.rtl {
		fmt.Fprintf(out, "ltr: %s\nrtl: %s\n", radius, flipped)
	} else {
		fmt.Fprintln(out, radius)
	}

	if opts.preview {
		drawing, err := preview.Render(radius, preview.Options{ASCII: !supportsUnicode(out)})
		if err != nil {
			return newCommandError("resolve", "drawing preview", err, "Use at most four corner values.")
		}
		fmt.Fprint(out, drawing)
	}

	return nil
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
