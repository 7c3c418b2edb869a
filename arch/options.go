package arch

import "log/slog"

// Config holds the architecture layer configuration.
type Config struct {
	// Logger receives diagnostics. Defaults to a logger that discards everything.
	Logger *slog.Logger

	// Strict makes enumeration fail on the first corrupt template instead of
	// treating the tile as empty.
	Strict bool

	// GroupBorder is the width of the ring of edge tiles that get no group
	// decal.
	GroupBorder int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger:      newNopLogger(),
		Strict:      false,
		GroupBorder: 1,
	}
}

// Option is a functional option for configuring an Arch.
type Option func(*Config)

// WithLogger sets the logger. Passing nil restores the silent default.
//
// Example:
//
//	a := arch.New(chip, arch.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		if logger == nil {
			logger = newNopLogger()
		}
		c.Logger = logger
	}
}

// WithStrict enables or disables strict enumeration.
// Default is false: corrupt tiles are logged and skipped.
func WithStrict(strict bool) Option {
	return func(c *Config) {
		c.Strict = strict
	}
}

// WithGroupBorder sets how many edge tiles on each side get no group decal.
// Default is 1.
func WithGroupBorder(border int) Option {
	return func(c *Config) {
		if border >= 0 {
			c.GroupBorder = border
		}
	}
}
