package client

import "github.com/rs/zerolog"

// Config holds the client configuration.
type Config struct {
	// SkipChecksum disables LRC verification of responses.
	SkipChecksum bool

	// Logger receives debug traces of frames sent and decode outcomes.
	Logger zerolog.Logger
}

func defaultConfig() Config {
	return Config{
		Logger: zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithSkipChecksum enables or disables checksum verification of responses.
// Default is verification on.
func WithSkipChecksum(skip bool) Option {
	return func(c *Config) {
		c.SkipChecksum = skip
	}
}

// WithLogger sets the logger for protocol traces. Default is a no-op logger.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	cli := client.New(link, client.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
