package cubestate

import "strings"

// ParseSequence splits text on runs of whitespace and parses each token.
// Valid moves are returned in order; malformed tokens are skipped and
// returned separately so the caller can report them.
func ParseSequence(text string) ([]Move, []*NotationError) {
	parts := strings.Fields(text)
	moves := make([]Move, 0, len(parts))

	var bad []*NotationError
	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			bad = append(bad, &NotationError{Token: part, Position: i})
			continue
		}
		moves = append(moves, move)
	}

	return moves, bad
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the group inverse of a move list: reversed order,
// each move inverted.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// ApplyMove applies a single move.
func (s *State) ApplyMove(m Move) error {
	return s.ApplyTurn(m.Face, m.Modifier)
}

// ApplyMoves applies moves in order. It stops at the first invalid move,
// leaving earlier moves applied.
func (s *State) ApplyMoves(moves ...Move) error {
	for _, m := range moves {
		if err := s.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyToken parses one token and applies it. A malformed token returns a
// *NotationError and does not touch the state.
func (s *State) ApplyToken(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return err
	}
	return s.ApplyMove(m)
}

// ApplySequence applies a whitespace-delimited move sequence left to right.
// Malformed tokens are skipped; they are returned for reporting and never
// stop the remaining tokens from being applied. Empty text is a no-op.
func (s *State) ApplySequence(text string) []*NotationError {
	var bad []*NotationError
	for i, token := range strings.Fields(text) {
		if err := s.ApplyToken(token); err != nil {
			bad = append(bad, &NotationError{Token: token, Position: i})
		}
	}
	return bad
}
