package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shapekit/internal/css"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
)

func newFlipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flip <radius>...",
		Short: "Mirror a radius for right-to-left layouts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			radius, err := parseRadiusArgs(args)
			if err != nil {
				return newCommandError("flip", "parsing radius", err, "Pass one to four corner values.")
			}
			flipped, err := shape.FlipRadius(radius)
			if err != nil {
				return newCommandError("flip", fmt.Sprintf("flipping %q", radius), err, "Use at most four corner values.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), flipped)
			return nil
		},
	}
}

func newMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mask <mask> <radius>...",
		Short:   "Square off corners of a radius",
		Example: `  shapekit mask "1 1 0 0" 2px 3px`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, err := shape.ParseMask(args[0])
			if err != nil {
				return newCommandError("mask", "parsing mask", err, `Pass four flags, e.g. "1 1 0 0".`)
			}
			radius, err := parseRadiusArgs(args[1:])
			if err != nil {
				return newCommandError("mask", "parsing radius", err, "Pass one to four corner values.")
			}
			masked, err := shape.MaskRadius(radius, mask)
			if err != nil {
				return newCommandError("mask", fmt.Sprintf("masking %q", radius), err, "Use at most four corner values.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), masked)
			return nil
		},
	}
}

func newPercentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "percent <height> <radius>...",
		Short:   "Resolve percentage corners against a component height",
		Example: `  shapekit percent 36px 50%`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := css.ParseDimension(args[0])
			if err != nil {
				return newCommandError("percent", "parsing height", err, "Use an absolute length such as 36px.")
			}
			radius, err := parseRadiusArgs(args[1:])
			if err != nil {
				return newCommandError("percent", "parsing radius", err, "Pass one to four corner values.")
			}
			resolved, err := shape.ResolvePercentageRadius(height, radius)
			if err != nil {
				return newCommandError("percent", fmt.Sprintf("resolving %q", radius), err, "The height must not itself be a percentage.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), resolved)
			return nil
		},
	}
}
