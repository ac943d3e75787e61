package latexlearn

// AnswerKey is the classified form of a question's answer field: either an
// index into the option list or literal answer text. Classification happens
// once, so downstream code never re-guesses what the raw field meant.
type AnswerKey struct {
	ByIndex bool
	Index   int    // valid when ByIndex
	Literal string // label-stripped, valid when !ByIndex
}

// ParseAnswerKey classifies a raw answer field against an option count.
// A letter that is out of range for the options degrades to literal text,
// matching ResolveAnswer.
func ParseAnswerKey(raw string, optionCount int) AnswerKey {
	if idx, ok := LetterIndex(raw); ok && idx >= 0 && idx < optionCount {
		return AnswerKey{ByIndex: true, Index: idx}
	}
	return AnswerKey{Literal: StripLabel(raw)}
}

// ResolveAnswer returns the definitive correct-answer text for q. If the
// answer key is a letter within the option bounds, the matching option is
// returned with its label stripped; otherwise the key itself is treated as
// literal text. Never panics on malformed input.
func ResolveAnswer(q Question) string {
	if idx, ok := LetterIndex(q.AnswerKey); ok && idx >= 0 && idx < len(q.Options) {
		return StripLabel(q.Options[idx])
	}
	return StripLabel(q.AnswerKey)
}
