package cubestate

import "sync"

// MoveEvent describes one move applied through a Session.
// Index counts moves since the last Reset.
type MoveEvent struct {
	Move   Move
	Index  int
	Before Snapshot
	After  Snapshot
}

// Session owns one State and records every move applied to it, so that the
// reversal of its history always returns the cube to solved. Methods are
// safe for concurrent use; move callbacks run after the session lock is
// released, in the goroutine that applied the moves.
type Session struct {
	mu        sync.Mutex
	state     *State
	scrambler *Scrambler
	history   []Move
	scramble  []Move
	report    Reporter
	onMove    func(MoveEvent)
}

// NewSession creates a session starting from a solved state.
func NewSession(opts ...Option) *Session {
	c := newConfig(opts)
	return &Session{
		state:     NewState(),
		scrambler: newScrambler(c),
		report:    c.reporter,
	}
}

// OnMove sets a callback that fires once per applied move.
func (s *Session) OnMove(fn func(MoveEvent)) {
	s.mu.Lock()
	s.onMove = fn
	s.mu.Unlock()
}

// Reset returns the cube to solved and clears the history.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset()
	s.history = nil
	s.scramble = nil
}

// Apply applies moves in order. Invalid moves are reported and skipped.
func (s *Session) Apply(moves ...Move) []Move {
	s.mu.Lock()
	applied, events := s.applyLocked(moves)
	fn := s.onMove
	s.mu.Unlock()

	s.emit(fn, events)
	return applied
}

// ApplySequence parses text and applies the valid moves. Malformed tokens
// are reported as DiagMalformedToken and skipped. It returns the moves
// that were applied.
func (s *Session) ApplySequence(text string) []Move {
	moves, bad := ParseSequence(text)
	ReportNotationErrors(s.report, bad)
	return s.Apply(moves...)
}

// Scramble generates a scramble, applies it and returns its notation.
// The scramble continues the filters across any moves already applied.
func (s *Session) Scramble(length int) string {
	s.mu.Lock()
	moves := s.scrambler.Extend(s.history, length)
	_, events := s.applyLocked(moves)
	s.scramble = moves
	fn := s.onMove
	s.mu.Unlock()

	s.emit(fn, events)
	return FormatMoves(moves)
}

// LastScramble returns the notation of the most recent Scramble.
func (s *Session) LastScramble() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FormatMoves(s.scramble)
}

// Solution returns the naive solution: the reversal of every move applied
// since the last Reset.
func (s *Session) Solution() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ReverseSequence(FormatMoves(s.history))
}

// Solve applies the naive solution and returns it. The history is cleared
// afterwards since the cube is solved again.
func (s *Session) Solve() string {
	s.mu.Lock()
	solution := InvertMoves(s.history)
	_, events := s.applyLocked(solution)
	s.history = nil
	s.scramble = nil
	fn := s.onMove
	s.mu.Unlock()

	s.emit(fn, events)
	return FormatMoves(solution)
}

// History returns a copy of the moves applied since the last Reset.
func (s *Session) History() []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Move(nil), s.history...)
}

// Snapshot returns a read-only copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsSolved()
}

// String returns a string representation of the cube.
func (s *Session) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.String()
}

func (s *Session) applyLocked(moves []Move) ([]Move, []MoveEvent) {
	applied := make([]Move, 0, len(moves))
	var events []MoveEvent
	for _, m := range moves {
		before := s.state.Snapshot()
		if err := s.state.ApplyMove(m); err != nil {
			s.report.report(Diagnostic{
				Kind:     DiagMalformedToken,
				Message:  "skipped invalid move",
				Token:    m.Notation(),
				Position: len(s.history),
				Err:      err,
			})
			continue
		}
		s.history = append(s.history, m)
		applied = append(applied, m)
		if s.onMove != nil {
			events = append(events, MoveEvent{
				Move:   m,
				Index:  len(s.history) - 1,
				Before: before,
				After:  s.state.Snapshot(),
			})
		}
	}
	return applied, events
}

func (s *Session) emit(fn func(MoveEvent), events []MoveEvent) {
	if fn == nil {
		return
	}
	for _, ev := range events {
		fn(ev)
	}
}
