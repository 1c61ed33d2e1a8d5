package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/shapekit/internal/logger"
	"github.com/alexisbeaulieu97/shapekit/internal/settings"
)

type rootFlags struct {
	shapesPath  string
	logLevel    string
	logFormat   string
	settingsDir string

	resolved settings.Settings
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "shapekit",
		Short:         "shapekit resolves border-radius values for shape design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.shapesPath, "shapes", "s", "", "Shapes file with categories and components (default from settings: shapes.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")
	cmd.PersistentFlags().StringVar(&flags.settingsDir, "settings-dir", ".", "Directory searched for .shapekit.yaml")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newFlipCmd())
	cmd.AddCommand(newMaskCmd())
	cmd.AddCommand(newPercentCmd())
	cmd.AddCommand(newCategoriesCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newFlakinessCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// resolve loads settings and lets explicitly passed flags win over them.
func (f *rootFlags) resolve(cmd *cobra.Command) error {
	loaded, err := settings.Load(f.settingsDir)
	if err != nil {
		return newCommandError("start", "loading settings", err, "Fix .shapekit.yaml or the SHAPEKIT_* environment variables.")
	}

	if cmd.Flags().Changed("shapes") {
		loaded.Shapes = f.shapesPath
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		loaded.LogFormat = f.logFormat
	}

	f.resolved = loaded
	return nil
}

func (f *rootFlags) logger(cmd *cobra.Command, component string) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         f.resolved.LogLevel,
		HumanReadable: f.resolved.LogFormat != "json",
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
}
