package logging

import (
	"go.uber.org/zap"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

// Options configures the root logger.
type Options struct {
	// Name is added to every entry as the `app` field.
	Name string

	// Level is a zap level name. Unknown or empty levels fall back to info.
	Level string

	// Format selects the zap preset. Anything but "development"
	// yields the production json encoder.
	Format string
}

// New builds the root logger. Both presets write to stderr.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if opts.Name != "" {
		config.InitialFields = map[string]any{
			"app": opts.Name,
		}
	}

	config.Level = ParseLevel(opts.Level)

	return config.Build()
}

// ParseLevel parses lvl, defaulting to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if lvl != "" {
		if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
			return atom
		}
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
