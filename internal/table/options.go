package table

// Config holds construction settings for a Table.
type Config struct {
	// Capacity is a size hint for the number of distinct types.
	Capacity int
}

// Option configures a Table during Init.
type Option func(*Config)

// WithCapacity hints that the table will hold about n types. Negative values
// are treated as zero.
func WithCapacity(n int) Option {
	return func(c *Config) {
		c.Capacity = max(n, 0)
	}
}
