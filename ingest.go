package latexlearn

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// questionDocSchema is the shape contract for generated question blobs:
// non-empty question and answer fields, and a non-empty array of option
// strings.
const questionDocSchema = `{
	"type": "object",
	"required": ["q", "a", "options"],
	"properties": {
		"q": {"type": "string", "minLength": 1},
		"a": {"type": "string", "minLength": 1},
		"options": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		}
	}
}`

var questionSchemaLoader = gojsonschema.NewStringLoader(questionDocSchema)

// Ingestor turns raw text from the generation service into validated
// questions and appends them to a bank. Nothing is appended until the blob
// has fully parsed and validated, so an abandoned or failed ingest leaves
// the bank untouched.
type Ingestor struct {
	bank *Bank
}

// NewIngestor creates an ingestor appending to bank.
func NewIngestor(bank *Bank) *Ingestor {
	return &Ingestor{bank: bank}
}

// Ingest parses rawText as a question record, validates its shape, rewrites
// the answer field to the resolved, label-stripped canonical text, and
// appends the question to the topic. The canonical rewrite means later
// resolution of this record no longer depends on its letter-to-option
// correspondence surviving future appends.
//
// All failures return an *IngestError carrying the offending text; no other
// error type escapes.
func (in *Ingestor) Ingest(topic, rawText string) (Question, error) {
	doc, ok := extractJSON(rawText)
	if !ok {
		return Question{}, &IngestError{
			Kind:   IngestMalformed,
			Reason: "text is not valid JSON, even after substring recovery",
			Raw:    rawText,
		}
	}

	res, err := gojsonschema.Validate(questionSchemaLoader, gojsonschema.NewStringLoader(doc))
	if err != nil {
		return Question{}, &IngestError{Kind: IngestMalformed, Reason: err.Error(), Raw: rawText}
	}
	if !res.Valid() {
		reasons := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			reasons = append(reasons, e.String())
		}
		return Question{}, &IngestError{
			Kind:   IngestInvalidShape,
			Reason: strings.Join(reasons, "; "),
			Raw:    rawText,
		}
	}

	var q Question
	if err := json.Unmarshal([]byte(doc), &q); err != nil {
		return Question{}, &IngestError{Kind: IngestMalformed, Reason: err.Error(), Raw: rawText}
	}

	resolved := ResolveAnswer(q)
	if key := ParseAnswerKey(q.AnswerKey, len(q.Options)); !key.ByIndex && !optionsContain(q.Options, resolved) {
		VerboseLog("ingest: answer key %q for topic %q matches no option, storing as literal text", q.AnswerKey, topic)
	}
	q.AnswerKey = resolved

	in.bank.Append(topic, q)
	return q, nil
}

// extractJSON returns rawText itself when it is already valid JSON, otherwise
// the first-{-to-last-} substring when that is valid JSON. Generation output
// routinely wraps the record in prose or code fences.
func extractJSON(rawText string) (string, bool) {
	if json.Valid([]byte(rawText)) {
		return rawText, true
	}
	start := strings.Index(rawText, "{")
	end := strings.LastIndex(rawText, "}")
	if start < 0 || end <= start {
		return "", false
	}
	sub := rawText[start : end+1]
	if !json.Valid([]byte(sub)) {
		return "", false
	}
	return sub, true
}

func optionsContain(options []string, text string) bool {
	want := Canonicalize(text)
	for _, opt := range options {
		if Canonicalize(StripLabel(opt)) == want {
			return true
		}
	}
	return false
}
