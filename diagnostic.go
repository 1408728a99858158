package cubestate

// DiagnosticKind classifies a non-fatal condition.
type DiagnosticKind int

const (
	// DiagMalformedToken: a sequence token did not match the move grammar and was skipped.
	DiagMalformedToken DiagnosticKind = iota + 1

	// DiagScrambleFallback: the scramble filters left no candidate move and a
	// less restrictive candidate set was used.
	DiagScrambleFallback

	// DiagInvalidSnapshot: a consumer was handed a snapshot it refused to use.
	DiagInvalidSnapshot
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagMalformedToken:
		return "malformed_token"
	case DiagScrambleFallback:
		return "scramble_fallback"
	case DiagInvalidSnapshot:
		return "invalid_snapshot"
	default:
		return "unknown"
	}
}

// Diagnostic describes a recoverable anomaly.
type Diagnostic struct {
	Kind     DiagnosticKind
	Message  string
	Token    string // malformed token, if any
	Position int    // token or scramble position
	Err      error
}

// Reporter receives diagnostics. A nil Reporter discards them.
type Reporter func(Diagnostic)

func (r Reporter) report(d Diagnostic) {
	if r != nil {
		r(d)
	}
}

// ReportNotationErrors forwards skipped tokens as DiagMalformedToken diagnostics.
func ReportNotationErrors(r Reporter, errs []*NotationError) {
	for _, e := range errs {
		r.report(Diagnostic{
			Kind:     DiagMalformedToken,
			Message:  "skipped move token",
			Token:    e.Token,
			Position: e.Position,
			Err:      e,
		})
	}
}
