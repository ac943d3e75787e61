package latexlearn_test

import (
	"errors"
	"sync"
	"testing"

	"latexlearn"
)

func newTestSession(t *testing.T) (*latexlearn.Session, *latexlearn.Bank) {
	t.Helper()
	bank := latexlearn.NewBank(latexlearn.BuiltinCatalog())
	return latexlearn.NewSession(bank), bank
}

func TestSubmitCorrectAnswer(t *testing.T) {
	session, _ := newTestSession(t)

	// "What symbol starts a comment?" in Basics: key "%" with unlabeled options.
	result, err := session.Submit("Basics", 2, "%")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.IsCorrect {
		t.Errorf("IsCorrect = false, want true")
	}
	if result.CorrectText != "%" {
		t.Errorf("CorrectText = %q, want %q", result.CorrectText, "%")
	}
	if session.Score() != 1 {
		t.Errorf("Score = %d, want 1", session.Score())
	}
}

func TestSubmitIdempotentCredit(t *testing.T) {
	session, _ := newTestSession(t)

	const n = 4
	for i := 0; i < n; i++ {
		result, err := session.Submit("Basics", 2, "%")
		if err != nil {
			t.Fatalf("Submit() #%d error = %v", i+1, err)
		}
		if !result.IsCorrect {
			t.Fatalf("Submit() #%d IsCorrect = false", i+1)
		}
	}

	if session.Score() != 1 {
		t.Errorf("Score after %d correct submissions = %d, want 1", n, session.Score())
	}
	if got := len(session.Review()); got != n {
		t.Errorf("review log length = %d, want %d", got, n)
	}
}

func TestSubmitConcurrentSubmissions(t *testing.T) {
	// The web shell shares one Session across overlapping requests from the
	// same cookie, so simultaneous submissions must keep the credit and
	// review invariants intact.
	session, _ := newTestSession(t)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := session.Submit("Basics", 2, "%"); err != nil {
				t.Errorf("Submit() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if session.Score() != 1 {
		t.Errorf("Score after %d concurrent correct submissions = %d, want 1", workers, session.Score())
	}
	if got := len(session.Review()); got != workers {
		t.Errorf("review log length = %d, want %d", got, workers)
	}
	if !session.Attempted("Basics", 2) {
		t.Error("question not marked attempted")
	}
}

func TestSubmitIncorrectTwice(t *testing.T) {
	session, _ := newTestSession(t)

	for i := 0; i < 2; i++ {
		result, err := session.Submit("Basics", 2, "//")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		if result.IsCorrect {
			t.Fatal("IsCorrect = true for a wrong answer")
		}
	}

	if session.Score() != 0 {
		t.Errorf("Score = %d, want 0", session.Score())
	}
	review := session.Review()
	if len(review) != 2 {
		t.Fatalf("review log length = %d, want 2", len(review))
	}
	for i, entry := range review {
		if entry.IsCorrect() {
			t.Errorf("review entry %d marked correct, want incorrect", i)
		}
	}
}

func TestSubmitWrongThenRight(t *testing.T) {
	session, _ := newTestSession(t)

	if _, err := session.Submit("Basics", 2, "//"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	result, err := session.Submit("Basics", 2, "%")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.IsCorrect {
		t.Fatal("second submission should be correct")
	}
	if session.Score() != 1 {
		t.Errorf("Score = %d, want 1", session.Score())
	}
}

func TestSubmitWhitespaceInsensitiveCaseSensitive(t *testing.T) {
	bank := latexlearn.NewBank(&latexlearn.Catalog{
		Questions: map[string][]latexlearn.Question{
			"T": {{Text: "q", AnswerKey: "A", Options: []string{"A B", "other"}}},
		},
	})
	session := latexlearn.NewSession(bank)

	result, err := session.Submit("T", 0, "  A  B ")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.IsCorrect {
		t.Error("whitespace runs should not affect comparison")
	}

	result, err = session.Submit("T", 0, "a b")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.IsCorrect {
		t.Error("comparison must be case-sensitive")
	}
}

func TestSubmitSelectionMissing(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.Submit("Basics", 0, "")
	if !errors.Is(err, latexlearn.ErrSelectionMissing) {
		t.Fatalf("Submit(\"\") error = %v, want ErrSelectionMissing", err)
	}
	if session.Score() != 0 {
		t.Errorf("Score mutated on missing selection: %d", session.Score())
	}
	if len(session.Review()) != 0 {
		t.Errorf("review log mutated on missing selection: %d entries", len(session.Review()))
	}
}

func TestSubmitUnknownQuestion(t *testing.T) {
	session, _ := newTestSession(t)

	_, err := session.Submit("No Such Topic", 0, "x")
	if !errors.Is(err, latexlearn.ErrNoSuchQuestion) {
		t.Fatalf("error = %v, want ErrNoSuchQuestion", err)
	}
	_, err = session.Submit("Basics", 999, "x")
	if !errors.Is(err, latexlearn.ErrNoSuchQuestion) {
		t.Fatalf("error = %v, want ErrNoSuchQuestion", err)
	}
	if session.Score() != 0 || len(session.Review()) != 0 {
		t.Error("state mutated on unknown question")
	}
}

func TestSubmitAppendedQuestionScoresOnOwnIndex(t *testing.T) {
	session, bank := newTestSession(t)

	idx := bank.Append("Basics", latexlearn.Question{
		Text:      "Which package provides align?",
		AnswerKey: "B",
		Options:   []string{"A) graphicx", "B) amsmath", "C) geometry", "D) babel"},
	})

	result, err := session.Submit("Basics", idx, "amsmath")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.IsCorrect {
		t.Errorf("IsCorrect = false, want true (correct text %q)", result.CorrectText)
	}
	if session.Score() != 1 {
		t.Errorf("Score = %d, want 1", session.Score())
	}
}
