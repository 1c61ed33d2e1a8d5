// Package settings loads CLI defaults from .shapekit.yaml and SHAPEKIT_* environment variables.
package settings

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/shapekit/internal/config"
)

const (
	configFileName = ".shapekit"
	configFileType = "yaml"
	envPrefix      = "SHAPEKIT"

	KeyShapes    = "shapes"
	KeyFlakiness = "flakiness"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Settings are the defaults commands fall back to when a flag is not given.
type Settings struct {
	Shapes    string `mapstructure:"shapes" yaml:"shapes" validate:"required"`
	Flakiness string `mapstructure:"flakiness" yaml:"flakiness" validate:"required"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=console json"`
}

// Defaults returns the settings used when neither file nor environment set a key.
func Defaults() Settings {
	return Settings{
		Shapes:    "shapes.yaml",
		Flakiness: "diffing.json",
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads .shapekit.yaml from dir when present and overlays SHAPEKIT_*
// environment variables. A missing file is not an error.
func Load(dir string) (Settings, error) {
	defaults := Defaults()

	v := viper.New()
	v.SetDefault(KeyShapes, defaults.Shapes)
	v.SetDefault(KeyFlakiness, defaults.Flakiness)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyLogFormat, defaults.LogFormat)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	if err := config.ValidateStruct(s); err != nil {
		return Settings{}, err
	}

	return s, nil
}
