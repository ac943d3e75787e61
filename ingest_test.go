package latexlearn_test

import (
	"errors"
	"testing"

	"latexlearn"
)

func newTestIngestor() (*latexlearn.Ingestor, *latexlearn.Bank) {
	bank := latexlearn.NewBank(latexlearn.BuiltinCatalog())
	return latexlearn.NewIngestor(bank), bank
}

func TestIngestRoundTrip(t *testing.T) {
	ingestor, bank := newTestIngestor()
	before := bank.Len("Basics")

	q, err := ingestor.Ingest("Basics", `{"q":"X?","a":"B","options":["A) 1","B) 2","C) 3","D) 4"]}`)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	// Letter key resolved and label stripped before storage.
	if q.AnswerKey != "2" {
		t.Errorf("stored AnswerKey = %q, want %q", q.AnswerKey, "2")
	}
	if q.Text != "X?" {
		t.Errorf("stored Text = %q, want %q", q.Text, "X?")
	}
	if len(q.Options) != 4 || q.Options[1] != "B) 2" {
		t.Errorf("options must be preserved verbatim for display, got %v", q.Options)
	}

	if got := bank.Len("Basics"); got != before+1 {
		t.Fatalf("bank length = %d, want %d", got, before+1)
	}
	stored, ok := bank.Question("Basics", before)
	if !ok {
		t.Fatal("ingested question not found at append index")
	}
	if latexlearn.ResolveAnswer(stored) != "2" {
		t.Errorf("ResolveAnswer on stored question = %q, want %q", latexlearn.ResolveAnswer(stored), "2")
	}
}

func TestIngestSubstringRecovery(t *testing.T) {
	ingestor, _ := newTestIngestor()

	raw := "Sure! Here is your question:\n```json\n" +
		`{"q":"Inline math delimiters?","a":"A","options":["A) $...$","B) \\[...\\]"]}` +
		"\n```\nEnjoy."
	q, err := ingestor.Ingest("Math Mode", raw)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if q.AnswerKey != "$...$" {
		t.Errorf("AnswerKey = %q, want %q", q.AnswerKey, "$...$")
	}
}

func TestIngestMalformed(t *testing.T) {
	ingestor, bank := newTestIngestor()
	before := bank.Len("Basics")

	raw := "the model refused to answer"
	_, err := ingestor.Ingest("Basics", raw)

	var ingestErr *latexlearn.IngestError
	if !errors.As(err, &ingestErr) {
		t.Fatalf("error = %v, want *IngestError", err)
	}
	if ingestErr.Kind != latexlearn.IngestMalformed {
		t.Errorf("Kind = %q, want %q", ingestErr.Kind, latexlearn.IngestMalformed)
	}
	if ingestErr.Raw != raw {
		t.Errorf("Raw = %q, want the offending text", ingestErr.Raw)
	}
	if bank.Len("Basics") != before {
		t.Error("bank mutated on malformed input")
	}
}

func TestIngestMalformedBrokenBraces(t *testing.T) {
	ingestor, _ := newTestIngestor()

	_, err := ingestor.Ingest("Basics", `prefix {"q":"X?","a": garbage`)
	var ingestErr *latexlearn.IngestError
	if !errors.As(err, &ingestErr) || ingestErr.Kind != latexlearn.IngestMalformed {
		t.Fatalf("error = %v, want malformed IngestError", err)
	}
}

func TestIngestInvalidShapeMissingAnswer(t *testing.T) {
	ingestor, bank := newTestIngestor()
	before := bank.Len("Basics")

	_, err := ingestor.Ingest("Basics", `{"q":"X?","options":["1","2"]}`)

	var ingestErr *latexlearn.IngestError
	if !errors.As(err, &ingestErr) {
		t.Fatalf("error = %v, want *IngestError", err)
	}
	if ingestErr.Kind != latexlearn.IngestInvalidShape {
		t.Errorf("Kind = %q, want %q", ingestErr.Kind, latexlearn.IngestInvalidShape)
	}
	if bank.Len("Basics") != before {
		t.Error("bank mutated on invalid shape")
	}
}

func TestIngestInvalidShapeVariants(t *testing.T) {
	ingestor, _ := newTestIngestor()

	cases := []struct {
		name string
		raw  string
	}{
		{"empty question", `{"q":"","a":"A","options":["1"]}`},
		{"empty answer", `{"q":"X?","a":"","options":["1"]}`},
		{"empty options", `{"q":"X?","a":"A","options":[]}`},
		{"non-string options", `{"q":"X?","a":"A","options":[1,2]}`},
		{"not an object", `["q","a"]`},
	}

	for _, c := range cases {
		_, err := ingestor.Ingest("Basics", c.raw)
		var ingestErr *latexlearn.IngestError
		if !errors.As(err, &ingestErr) {
			t.Errorf("%s: error = %v, want *IngestError", c.name, err)
			continue
		}
		if ingestErr.Kind != latexlearn.IngestInvalidShape {
			t.Errorf("%s: Kind = %q, want %q", c.name, ingestErr.Kind, latexlearn.IngestInvalidShape)
		}
	}
}

func TestIngestLiteralAnswerKey(t *testing.T) {
	ingestor, _ := newTestIngestor()

	q, err := ingestor.Ingest("Symbols", `{"q":"Infinity?","a":"\\infty","options":["\\inf","\\infty","\\oo"]}`)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if q.AnswerKey != `\infty` {
		t.Errorf("AnswerKey = %q, want %q", q.AnswerKey, `\infty`)
	}
}

func TestIngestCreatesTopic(t *testing.T) {
	ingestor, bank := newTestIngestor()

	_, err := ingestor.Ingest("Custom Topic", `{"q":"X?","a":"A","options":["A) yes","B) no"]}`)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if bank.Len("Custom Topic") != 1 {
		t.Errorf("Custom Topic length = %d, want 1", bank.Len("Custom Topic"))
	}
}
