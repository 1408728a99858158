// Package cubestate models the 54-facelet state of a 3x3 Rubik's cube and
// the face turns that permute it.
//
// # Features
//
//   - Solved-state construction and in-place face turns (U, D, L, R, F, B,
//     their inverses and half turns)
//   - Strict move notation parsing: [UDLRFB](['2])?
//   - Whitespace-delimited sequence application that skips malformed tokens
//   - Redundancy-filtered random scrambles
//   - The naive reverse-and-invert solver transform
//   - Read-only snapshots for renderers
//
// # Quick Start
//
//	s := cubestate.NewState()
//
//	// Apply moves using predefined constants
//	s.ApplyMoves(cubestate.R, cubestate.U, cubestate.RPrime, cubestate.UPrime)
//
//	// Or from notation; malformed tokens are skipped and returned
//	if bad := s.ApplySequence("F B2 L' D"); len(bad) > 0 {
//	    log.Printf("skipped %d tokens", len(bad))
//	}
//
//	fmt.Println("Solved:", s.IsSolved())
//
// # Scrambles
//
//	scramble := cubestate.GenerateScramble(cubestate.DefaultScrambleLength)
//	s.ApplySequence(scramble)
//	s.ApplySequence(cubestate.ReverseSequence(scramble)) // back to solved
//
// # Sessions
//
// A State has no locking. Session owns one State, serializes access to it,
// records every applied move and reports per-move events:
//
//	sess := cubestate.NewSession(cubestate.WithReporter(func(d cubestate.Diagnostic) {
//	    log.Println(d.Kind, d.Message)
//	}))
//	sess.OnMove(func(ev cubestate.MoveEvent) {
//	    fmt.Println("Move:", ev.Move)
//	})
//	sess.Scramble(20)
//	sess.Solve()
package cubestate
