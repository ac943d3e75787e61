package latexlearn_test

import (
	"testing"

	"latexlearn"
)

func TestNewBankIsIndependentCopy(t *testing.T) {
	catalog := latexlearn.BuiltinCatalog()
	a := latexlearn.NewBank(catalog)
	b := latexlearn.NewBank(catalog)

	before := a.Len("Basics")
	a.Append("Basics", latexlearn.Question{Text: "extra", AnswerKey: "x", Options: []string{"x", "y"}})

	if got := a.Len("Basics"); got != before+1 {
		t.Fatalf("a.Len = %d, want %d", got, before+1)
	}
	if got := b.Len("Basics"); got != before {
		t.Errorf("append leaked into sibling bank: b.Len = %d, want %d", got, before)
	}
	if got := len(catalog.Questions["Basics"]); got != before {
		t.Errorf("append leaked into catalog: len = %d, want %d", got, before)
	}
}

func TestBankAppendReturnsStableIndex(t *testing.T) {
	bank := latexlearn.NewBank(latexlearn.BuiltinCatalog())

	n := bank.Len("Limits")
	idx := bank.Append("Limits", latexlearn.Question{Text: "new", AnswerKey: "A", Options: []string{"1", "2"}})
	if idx != n {
		t.Fatalf("Append index = %d, want %d", idx, n)
	}

	// Earlier questions keep their positions after the append.
	first, ok := bank.Question("Limits", 0)
	if !ok {
		t.Fatal("question 0 missing after append")
	}
	want := latexlearn.BuiltinCatalog().Questions["Limits"][0].Text
	if first.Text != want {
		t.Errorf("question 0 text = %q, want %q", first.Text, want)
	}
}

func TestBankAppendCreatesTopic(t *testing.T) {
	bank := latexlearn.NewBank(latexlearn.BuiltinCatalog())

	idx := bank.Append("Brand New", latexlearn.Question{Text: "q", AnswerKey: "A", Options: []string{"1"}})
	if idx != 0 {
		t.Fatalf("Append to new topic index = %d, want 0", idx)
	}
	if !bank.Has("Brand New") {
		t.Error("new topic not present after append")
	}

	topics := bank.Topics()
	if topics[len(topics)-1] != "Brand New" {
		t.Errorf("new topic should come last in display order, got %v", topics)
	}
}

func TestBankQuestionBounds(t *testing.T) {
	bank := latexlearn.NewBank(latexlearn.BuiltinCatalog())

	if _, ok := bank.Question("Basics", -1); ok {
		t.Error("negative index should not resolve")
	}
	if _, ok := bank.Question("Basics", bank.Len("Basics")); ok {
		t.Error("past-the-end index should not resolve")
	}
	if _, ok := bank.Question("No Such Topic", 0); ok {
		t.Error("unknown topic should not resolve")
	}
}

func TestBuiltinCatalogShape(t *testing.T) {
	catalog := latexlearn.BuiltinCatalog()

	if len(catalog.Topics) == 0 {
		t.Fatal("catalog has no topics")
	}
	for _, topic := range catalog.Topics {
		qs, ok := catalog.Questions[topic.Name]
		if !ok {
			t.Errorf("topic %q has no questions", topic.Name)
			continue
		}
		for i, q := range qs {
			if q.Text == "" || q.AnswerKey == "" || len(q.Options) == 0 {
				t.Errorf("topic %q question %d is incomplete: %+v", topic.Name, i, q)
			}
			// Every built-in answer must reconcile against its own options.
			correct := latexlearn.ResolveAnswer(q)
			found := false
			for _, opt := range q.Options {
				if latexlearn.Canonicalize(latexlearn.StripLabel(opt)) == latexlearn.Canonicalize(correct) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("topic %q question %d: resolved answer %q matches no option", topic.Name, i, correct)
			}
		}
	}
}
