package cubestate

import "math/rand/v2"

// Option configures a Scrambler or a Session.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	space    []Move
	policy   Policy
	reporter Reporter
}

func defaultConfig() *config {
	return &config{
		policy: StrictAxis,
	}
}

func newConfig(opts []Option) *config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if len(c.space) == 0 {
		c.space = AllMoves()
	}
	return c
}

// WithSeed makes scrambles reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand uses the given random source for scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithMoveSpace restricts the moves a scramble may draw from.
// An empty slice keeps the full 18-move space. Invalid moves are dropped.
func WithMoveSpace(moves []Move) Option {
	return func(c *config) {
		c.space = c.space[:0]
		for _, m := range moves {
			if m.Valid() {
				c.space = append(c.space, m)
			}
		}
	}
}

// WithPolicy selects the redundancy filter used between consecutive moves.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithReporter receives diagnostics such as skipped tokens or scramble fallbacks.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}
