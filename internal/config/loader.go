package config

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Loader handles configuration loading with layered precedence.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a configuration loader.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}

	return &Loader{log: log}
}

// Load resolves the effective configuration:
//
//  1. defaults;
//  2. user config (~/.config/convlint/config.yaml);
//  3. project config (convlint.yaml in the working directory or an ancestor).
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if path := l.userConfigPath(); path != "" {
		layer, err := LoadFromFile(path)
		switch {
		case err == nil:
			l.log.Debug("loaded user config", zap.String("path", path))
			cfg.Merge(layer)
		case os.IsNotExist(err):
			// nothing to load
		default:
			l.log.Warn("failed to load user config", zap.String("path", path), zap.Error(err))
		}
	}

	if path := l.findProjectConfig(); path != "" {
		layer, err := LoadFromFile(path)
		if err != nil {
			l.log.Warn("failed to load project config", zap.String("path", path), zap.Error(err))
		} else {
			l.log.Debug("loaded project config", zap.String("path", path))
			cfg.Merge(layer)
		}
	} else {
		l.log.Debug("no project config found")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, filepath.FromSlash(UserConfigPath))
}

// findProjectConfig walks from the working directory towards the filesystem
// root looking for convlint.yaml.
func (l *Loader) findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
