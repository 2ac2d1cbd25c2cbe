// Package pagination parses limit/offset query parameters for list endpoints.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultLimit int `env:"PAGINATION_DEFAULT_LIMIT" envDefault:"10"` // Items returned when no limit is given
	MaxLimit     int `env:"PAGINATION_MAX_LIMIT" envDefault:"100"`    // Largest accepted limit
}

// DefaultConfig returns the default pagination configuration: limit=10, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// WithDefaults replaces non-positive values with DefaultConfig values and
// keeps DefaultLimit within MaxLimit.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.MaxLimit <= 0 {
		c.MaxLimit = def.MaxLimit
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = def.DefaultLimit
	}
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
	return c
}
