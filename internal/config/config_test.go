package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/report"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.True(t, cfg.UseBuiltin())
	require.Equal(t, convrules.SeverityInfo, cfg.MinSeverity)
	require.Equal(t, convrules.SeverityError, cfg.FailOn)
	require.Equal(t, report.FormatText, cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestMergePrecedence(t *testing.T) {
	cfg := Default()

	off := false
	cfg.Merge(&Config{
		Rules:       []string{"team.yaml"},
		Builtin:     &off,
		MinSeverity: convrules.SeverityWarning,
		Jobs:        4,
	})

	require.Equal(t, []string{"team.yaml"}, cfg.Rules)
	require.False(t, cfg.UseBuiltin())
	require.Equal(t, convrules.SeverityWarning, cfg.MinSeverity)
	require.Equal(t, 4, cfg.Jobs)
	// Untouched fields keep the previous layer.
	require.Equal(t, convrules.SeverityError, cfg.FailOn)
	require.Equal(t, report.FormatText, cfg.Format)
}

func TestMergeZeroLayerKeepsEverything(t *testing.T) {
	cfg := Default()
	cfg.Rules = []string{"a.yaml"}

	cfg.Merge(&Config{})
	require.Equal(t, []string{"a.yaml"}, cfg.Rules)
	require.True(t, cfg.UseBuiltin())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "convlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - conventions/team.yaml
builtin: false
min_severity: warning
fail_on: warning
format: json
jobs: 2
exclude:
  - "**/generated/**"
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"conventions/team.yaml"}, cfg.Rules)
	require.False(t, cfg.UseBuiltin())
	require.Equal(t, convrules.SeverityWarning, cfg.MinSeverity)
	require.Equal(t, convrules.SeverityWarning, cfg.FailOn)
	require.Equal(t, report.FormatJSON, cfg.Format)
	require.Equal(t, 2, cfg.Jobs)
	require.Equal(t, []string{"**/generated/**"}, cfg.Exclude)
}

func TestLoadFromFileBadSeverity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "convlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_severity: loud\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Jobs = -1
	require.Error(t, cfg.Validate())
}
