package emission

import (
	"os"

	"github.com/rs/zerolog"
)

// Option configures a model at construction.
type Option func(*config)

type config struct {
	name   string
	logger zerolog.Logger
}

func defaultConfig(ch Channel) config {
	return config{
		name:   channelDefaultNames[ch],
		logger: zerolog.New(os.Stdout),
	}
}

// WithName overrides the channel's default instance name. The name labels
// diagnostics and error contexts; fits combining several components of the
// same channel need distinct names. Empty names are ignored.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger replaces the diagnostic logger. The default writes one line per
// Calc to standard output; pass zerolog.Nop() to silence evaluations.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func applyOptions(ch Channel, opts ...Option) config {
	cfg := defaultConfig(ch)

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
