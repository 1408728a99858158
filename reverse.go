package cubestate

import "strings"

// ReverseSequence is the naive solver: it reverses token order and inverts
// each token. A trailing ' is dropped, 2-suffixed tokens are kept and any
// other token gets a ' appended. It works on the text alone and never
// validates tokens, so it only undoes a scramble whose moves were all applied.
//
//	ReverseSequence("R U R' U'") == "U R U' R'"
func ReverseSequence(sequence string) string {
	tokens := strings.Fields(sequence)
	if len(tokens) == 0 {
		return ""
	}

	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[len(tokens)-1-i] = invertToken(token)
	}
	return strings.Join(out, " ")
}

func invertToken(token string) string {
	switch {
	case strings.HasSuffix(token, "'"):
		return strings.TrimSuffix(token, "'")
	case strings.HasSuffix(token, "2"):
		return token
	default:
		return token + "'"
	}
}
