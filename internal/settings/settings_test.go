package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	shapeerrors "github.com/alexisbeaulieu97/shapekit/pkg/errors"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	contents := "shapes: design/shapes.yaml\nlog_level: debug\nlog_format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shapekit.yaml"), []byte(contents), 0o644))

	s, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "design/shapes.yaml", s.Shapes)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, "json", s.LogFormat)
	require.Equal(t, "diffing.json", s.Flakiness)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shapekit.yaml"), []byte("log_level: debug\n"), 0o644))
	t.Setenv("SHAPEKIT_LOG_LEVEL", "warn")
	t.Setenv("SHAPEKIT_FLAKINESS", "test/screenshot/diffing.json")

	s, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "warn", s.LogLevel)
	require.Equal(t, "test/screenshot/diffing.json", s.Flakiness)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shapekit.yaml"), []byte("log_format: xml\n"), 0o644))

	_, err := Load(dir)
	var validationErr *shapeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "log_format", validationErr.Field)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shapekit.yaml"), []byte("log_level: [\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read settings")
}
