// Package logger is the zerolog front end shared by shapekit commands.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Component is attached to every entry when set, e.g. "build" or "flakiness".
	Component string
}

// Logger wraps zerolog and adds helpers for the events a stylesheet build emits.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing to opts.Writer, or stderr when unset.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		writer = console
	}

	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger()}
}

// ForSelector scopes every later entry to one component selector.
func (l *Logger) ForSelector(selector string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("selector", selector).Logger()}
}

// BuildStarted records the inputs of a stylesheet build.
func (l *Logger) BuildStarted(shapesPath string, categories, components int) {
	if l == nil {
		return
	}
	l.base.Info().
		Str("shapes", shapesPath).
		Int("categories", categories).
		Int("components", components).
		Msg("building stylesheet")
}

// RulesResolved records how many rules one declaration produced. A count of
// two means a right-to-left mirror rule was emitted.
func (l *Logger) RulesResolved(rules int) {
	if l == nil {
		return
	}
	l.base.Debug().
		Int("rules", rules).
		Bool("rtl_mirror", rules > 1).
		Msg("component resolved")
}

// StylesheetWritten records where the generated CSS went.
func (l *Logger) StylesheetWritten(path string, rules int) {
	if l == nil {
		return
	}
	l.base.Info().Str("output", path).Int("rules", rules).Msg("stylesheet written")
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error entry carrying err.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
