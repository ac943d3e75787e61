package latexlearn

import (
	"errors"
	"fmt"
)

// Question represents a single multiple choice quiz question.
// AnswerKey is either a bare letter (A-D, optionally with a label separator)
// naming an index into Options, or literal answer text that may itself carry
// a leading label.
type Question struct {
	Text      string   `json:"q" yaml:"q"`
	AnswerKey string   `json:"a" yaml:"a"`
	Options   []string `json:"options" yaml:"options"`
}

// Topic holds the study material shown in the Teacher section.
type Topic struct {
	Name    string `json:"name" yaml:"name"`
	Note    string `json:"note" yaml:"note"`
	Example string `json:"example" yaml:"example"`
}

// SubmitResult is the verdict returned for a single answer submission.
type SubmitResult struct {
	IsCorrect   bool   `json:"is_correct"`
	CorrectText string `json:"correct_text"`
}

// ReviewEntry is one record in a session's chronological review log.
// Every submission is recorded, correct or not.
type ReviewEntry struct {
	Question  string `json:"question"`
	Correct   string `json:"correct"`
	Submitted string `json:"submitted"`
}

// IsCorrect reports whether the submitted answer matched the correct one.
func (e ReviewEntry) IsCorrect() bool {
	return Canonicalize(e.Submitted) == Canonicalize(e.Correct)
}

var (
	// ErrSelectionMissing means an answer was submitted with no option chosen.
	ErrSelectionMissing = errors.New("no option selected")

	// ErrNoSuchQuestion means the (topic, index) pair names no known question.
	ErrNoSuchQuestion = errors.New("no such question")

	// ErrGenerationUnavailable means the text-generation service failed at the
	// transport level before any question text was produced.
	ErrGenerationUnavailable = errors.New("model unavailable")
)

// IngestErrorKind classifies why a raw question blob was rejected.
type IngestErrorKind string

const (
	// IngestMalformed means the text could not be parsed as JSON, even after
	// substring recovery.
	IngestMalformed IngestErrorKind = "malformed"

	// IngestInvalidShape means the text parsed but is missing required fields
	// or has fields of the wrong type.
	IngestInvalidShape IngestErrorKind = "invalid_shape"
)

// IngestError reports a rejected question blob. Raw carries the offending
// text so callers can show it for inspection.
type IngestError struct {
	Kind   IngestErrorKind
	Reason string
	Raw    string
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("ingest %s: %s", e.Kind, e.Reason)
}
