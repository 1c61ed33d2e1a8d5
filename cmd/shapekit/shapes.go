package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shapekit/internal/config"
	"github.com/alexisbeaulieu97/shapekit/internal/shape"
)

// loadShapes parses the configured shapes file. When the path came from the
// defaults and no such file exists, it returns nil without error.
func loadShapes(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	path := flags.resolved.Shapes
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("shapes") {
		return nil, nil
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading shapes file "+path, err, "Run with --shapes pointing at a valid shapes.yaml.")
	}
	return cfg, nil
}

// loadResolver builds a resolver from the shapes file, or from the stock
// categories when there is none.
func loadResolver(cmd *cobra.Command, flags *rootFlags) (*shape.Resolver, error) {
	cfg, err := loadShapes(cmd, flags)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return shape.NewResolver(shape.DefaultCategories()), nil
	}

	categories, err := cfg.BuildCategories()
	if err != nil {
		return nil, newCommandError(cmd.Name(), "building categories", err, "Category radii must be absolute lengths or var()/calc() expressions.")
	}
	return shape.NewResolver(categories), nil
}

func parseRadiusArgs(args []string) (shape.Radius, error) {
	return shape.ParseRadius(strings.Join(args, " "))
}
