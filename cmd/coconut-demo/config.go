package main

import "fmt"

// Config holds the parameters of one end-to-end demo run: how many
// attribute slots the deployment supports, the threshold signing policy,
// and the attribute values to issue and show. It has no file format or
// persistence of its own -- everything is resolved from flags.
type Config struct {
	Attributes  int
	Threshold   int
	Authorities int
	PrivateAttr uint64
	PublicAttr  uint64
	Verbosity   int
	LogFormat   string
}

// DefaultConfig returns a small, valid (2, 3) threshold demo: two
// attribute slots, one private and one public.
func DefaultConfig() Config {
	return Config{
		Attributes:  2,
		Threshold:   2,
		Authorities: 3,
		PrivateAttr: 7,
		PublicAttr:  3,
		Verbosity:   2,
		LogFormat:   "text",
	}
}

// Validate checks that the resolved configuration describes a runnable
// credential exchange.
func (c Config) Validate() error {
	if c.Attributes < 1 {
		return fmt.Errorf("attributes must be >= 1, got %d", c.Attributes)
	}
	if c.Threshold < 1 || c.Threshold > c.Authorities {
		return fmt.Errorf("threshold must satisfy 1 <= t <= n, got t=%d n=%d", c.Threshold, c.Authorities)
	}
	if c.Verbosity < 0 || c.Verbosity > 4 {
		return fmt.Errorf("verbosity must be 0-4, got %d", c.Verbosity)
	}
	switch c.LogFormat {
	case "text", "json", "color":
	default:
		return fmt.Errorf("log-format must be one of text, json, color, got %q", c.LogFormat)
	}
	return nil
}
