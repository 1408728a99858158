package cubestate

import (
	"fmt"
	"math/rand/v2"
)

// DefaultScrambleLength is the number of moves in a standard scramble.
const DefaultScrambleLength = 20

// Policy selects how consecutive scramble moves are filtered.
type Policy int

const (
	// StrictAxis forbids a move on the same axis as the previous move.
	StrictAxis Policy = iota

	// OppositePairs only forbids repeating the previous face, so pairs such
	// as "R L" may appear, but never "R L R".
	OppositePairs
)

func (p Policy) String() string {
	switch p {
	case StrictAxis:
		return "strict"
	case OppositePairs:
		return "opposite-pairs"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "strict", "":
		return StrictAxis, nil
	case "opposite-pairs":
		return OppositePairs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Scrambler generates random, redundancy-filtered move sequences.
// It is not safe for concurrent use.
type Scrambler struct {
	rng       *rand.Rand
	space     []Move
	policy    Policy
	report    Reporter
	fallbacks int
}

// NewScrambler creates a scrambler over the full move space with the
// StrictAxis policy unless options say otherwise.
func NewScrambler(opts ...Option) *Scrambler {
	c := newConfig(opts)
	return newScrambler(c)
}

func newScrambler(c *config) *Scrambler {
	return &Scrambler{
		rng:    c.rng,
		space:  c.space,
		policy: c.policy,
		report: c.reporter,
	}
}

// GenerateScramble returns a space-joined scramble of length moves using a
// freshly seeded scrambler.
func GenerateScramble(length int) string {
	return NewScrambler().Generate(length)
}

// Generate returns a space-joined scramble of length moves.
func (s *Scrambler) Generate(length int) string {
	return FormatMoves(s.Moves(length))
}

// Moves returns length scramble moves. A non-positive length returns nil.
func (s *Scrambler) Moves(length int) []Move {
	return s.Extend(nil, length)
}

// Extend returns length new moves that continue after history, applying the
// filters across the boundary as if history had been generated here.
func (s *Scrambler) Extend(history []Move, length int) []Move {
	if length <= 0 {
		return nil
	}

	// window holds at most the two preceding moves.
	window := make([]Move, 0, 3)
	if n := len(history); n > 2 {
		window = append(window, history[n-2:]...)
	} else {
		window = append(window, history...)
	}

	out := make([]Move, 0, length)
	for len(out) < length {
		next := s.pick(window, len(out))
		out = append(out, next)
		window = append(window, next)
		if len(window) > 2 {
			window = append(window[:0], window[1:]...)
		}
	}
	return out
}

// Fallbacks returns how many times the filters left no candidate.
func (s *Scrambler) Fallbacks() int {
	return s.fallbacks
}

func (s *Scrambler) pick(window []Move, pos int) Move {
	candidates := s.candidates(window, true)
	if len(candidates) == 0 {
		s.fallback(pos, "no candidate after redundancy filters, using the same-axis filter only")
		candidates = s.candidates(window, false)
	}
	if len(candidates) == 0 {
		s.fallback(pos, "no candidate after the same-axis filter, using the whole move space")
		candidates = s.space
	}
	return candidates[s.rng.IntN(len(candidates))]
}

func (s *Scrambler) fallback(pos int, msg string) {
	s.fallbacks++
	s.report.report(Diagnostic{
		Kind:     DiagScrambleFallback,
		Message:  msg,
		Position: pos,
	})
}

func (s *Scrambler) candidates(window []Move, closure bool) []Move {
	out := make([]Move, 0, len(s.space))
	for _, m := range s.space {
		if s.allowed(window, m, closure) {
			out = append(out, m)
		}
	}
	return out
}

// allowed applies the repeat filter against the last move and, when closure
// is set, the ping-pong filter against the last two.
func (s *Scrambler) allowed(window []Move, m Move, closure bool) bool {
	n := len(window)
	if n == 0 {
		return true
	}

	last := window[n-1]
	if s.policy == OppositePairs {
		if m.Face == last.Face {
			return false
		}
	} else if m.Axis() == last.Axis() {
		return false
	}

	if closure && n == 2 {
		first := window[0]
		// first and last are the two faces of one axis: do not return to it.
		if first.Face == last.Face.Opposite() && m.Axis() == first.Axis() {
			return false
		}
	}
	return true
}
