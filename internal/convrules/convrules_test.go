package convrules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/convlint/internal/predicate"
)

func TestSeverityText(t *testing.T) {
	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("warning")))
	require.Equal(t, SeverityWarning, s)

	require.Error(t, s.UnmarshalText([]byte("fatal")))

	_, err := Severity(42).MarshalText()
	require.Error(t, err)
}

func TestSeverityOrdering(t *testing.T) {
	require.True(t, SeverityError.AtLeast(SeverityWarning))
	require.True(t, SeverityWarning.AtLeast(SeverityWarning))
	require.False(t, SeverityInfo.AtLeast(SeverityWarning))
}

func TestDomainDefaultGlob(t *testing.T) {
	tests := []struct {
		domain Domain
		glob   string
	}{
		{DomainPython, "**/*.py"},
		{DomainBash, "**/*.{sh,bash,zsh}"},
		{DomainNodejs, "**/*.{js,mjs,cjs}"},
		{DomainLaravel, "**/*.php"},
		{DomainWordPress, "**/*.php"},
	}
	for _, tt := range tests {
		t.Run(tt.domain.String(), func(t *testing.T) {
			require.Equal(t, tt.glob, tt.domain.DefaultGlob())
		})
	}
}

func TestNewRuleValidation(t *testing.T) {
	p, err := predicate.Compile(predicate.KindRegex, `\bvar\b`, 0)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		rule, err := NewRule("no-var", SeverityError, "*.js", "no var", p)
		require.NoError(t, err)
		require.Equal(t, "no-var", rule.ID)
	})

	t.Run("bad severity", func(t *testing.T) {
		_, err := NewRule("no-var", Severity(9), "*.js", "", p)
		var invalid *InvalidRuleError
		require.True(t, errors.As(err, &invalid))
		require.Equal(t, "no-var", invalid.RuleID)
	})

	t.Run("no glob", func(t *testing.T) {
		_, err := NewRule("no-var", SeverityError, "", "", p)
		var invalid *InvalidRuleError
		require.True(t, errors.As(err, &invalid))
	})

	t.Run("broken glob", func(t *testing.T) {
		_, err := NewRule("no-var", SeverityError, "[", "", p)
		var invalid *InvalidRuleError
		require.True(t, errors.As(err, &invalid))
	})

	t.Run("nil predicate", func(t *testing.T) {
		_, err := NewRule("no-var", SeverityError, "*.js", "", nil)
		var invalid *InvalidRuleError
		require.True(t, errors.As(err, &invalid))
	})
}

func TestRuleAppliesTo(t *testing.T) {
	p, err := predicate.Compile(predicate.KindRegex, `x`, 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		glob string
		path string
		want bool
	}{
		{"base name match", "*.js", "pkg/web/app.js", true},
		{"base name miss", "*.js", "pkg/web/app.py", false},
		{"doublestar", "**/*.py", "a/b/c/d.py", true},
		{"brace set", "**/*.{sh,bash,zsh}", "tools/run.zsh", true},
		{"anchored dir", "app/**/*.php", "app/Http/Kernel.php", true},
		{"anchored dir miss", "app/**/*.php", "config/app.php", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := NewRule("r", SeverityInfo, tt.glob, "", p)
			require.NoError(t, err)
			require.Equal(t, tt.want, rule.AppliesTo(tt.path))
		})
	}
}

func TestConventionSummary(t *testing.T) {
	conv, err := NewConvention("id", DomainPython, "style", "first line\nsecond line", "")
	require.NoError(t, err)
	require.Equal(t, "first line", conv.Summary())
}
