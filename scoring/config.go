package scoring

import "math"

// Config holds the three non-negative per-operation costs used by the
// alignment engine: Substitution, Deletion, Insertion.
type Config struct {
	Substitution Score
	Deletion     Score
	Insertion    Score
}

// Option configures a Config before construction.
type Option func(*Config)

// WithSubstitution sets the substitution cost.
func WithSubstitution(cost Score) Option {
	return func(c *Config) { c.Substitution = cost }
}

// WithDeletion sets the deletion cost.
func WithDeletion(cost Score) Option {
	return func(c *Config) { c.Deletion = cost }
}

// WithInsertion sets the insertion cost.
func WithInsertion(cost Score) Option {
	return func(c *Config) { c.Insertion = cost }
}

// DefaultConfig returns the unit-cost scoring configuration
// (substitution = deletion = insertion = 1).
func DefaultConfig() Config {
	return Config{Substitution: 1, Deletion: 1, Insertion: 1}
}

// New builds a validated Config from functional options, starting from
// DefaultConfig.
func New(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports ErrInvalidCost if any cost is negative.
func (c Config) Validate() error {
	if c.Substitution < 0 || c.Deletion < 0 || c.Insertion < 0 {
		return ErrInvalidCost
	}

	return nil
}

// MaxCost returns max(Substitution, Deletion, Insertion).
func (c Config) MaxCost() Score {
	m := c.Substitution
	if c.Deletion > m {
		m = c.Deletion
	}
	if c.Insertion > m {
		m = c.Insertion
	}

	return m
}

// SentinelFor returns the "infinity" value L*MaxCost()+1 used to seed a
// layer for a query of the given length, or ErrScoreOverflow if it would
// not fit in Score.
func (c Config) SentinelFor(queryLen int) (Score, error) {
	l := Score(queryLen)
	maxCost := c.MaxCost()

	if maxCost != 0 && l > (math.MaxInt64-1)/maxCost {
		return 0, ErrScoreOverflow
	}
	product := l * maxCost
	if product > math.MaxInt64-1 {
		return 0, ErrScoreOverflow
	}

	return product + 1, nil
}
