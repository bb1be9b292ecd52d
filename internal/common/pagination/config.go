// Package pagination parses limit/offset query parameters and builds list metadata.
package pagination

// Config bounds list endpoints.
type Config struct {
	DefaultLimit int // Default items per page (typically 20)
	MaxLimit     int // Limits above this are clamped (typically 100)
}

// DefaultConfig returns the standard bounds.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// WithDefault returns a copy whose default limit is def, keeping the same maximum.
// Endpoints such as "latest" or "featured" use smaller defaults than plain listings.
func (c Config) WithDefault(def int) Config {
	c.DefaultLimit = def
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
	return c
}
