package latexlearn

import (
	"fmt"
	"sync"
)

type creditKey struct {
	topic string
	index int
}

// Session tracks one learner's quiz progress: a running score, the set of
// questions already credited, and a chronological review log of every
// submission. The session holds a reference to its bank but does not own it.
//
// A Session models a single learner but is safe for concurrent use: the web
// shell hands the same Session to every request carrying one cookie, and
// overlapping submissions must not corrupt the credited set or review log.
type Session struct {
	bank *Bank

	mu       sync.Mutex
	score    int
	credited map[creditKey]struct{}
	review   []ReviewEntry
}

// NewSession creates a session over the given bank.
func NewSession(bank *Bank) *Session {
	return &Session{
		bank:     bank,
		credited: make(map[creditKey]struct{}),
	}
}

// Bank returns the question bank this session reads from.
func (s *Session) Bank() *Bank { return s.bank }

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Attempted reports whether (topic, index) has already been credited.
func (s *Session) Attempted(topic string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.credited[creditKey{topic, index}]
	return ok
}

// Review returns a copy of the review log in submission order.
func (s *Session) Review() []ReviewEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ReviewEntry(nil), s.review...)
}

// Submit evaluates the selected option text against the question at
// (topic, index). The score is incremented at most once per question no
// matter how many times it is re-submitted; the review log records every
// submission. An empty selection is a no-op that returns
// ErrSelectionMissing. No error path leaves the session partially mutated.
func (s *Session) Submit(topic string, index int, selected string) (SubmitResult, error) {
	if selected == "" {
		return SubmitResult{}, ErrSelectionMissing
	}

	q, ok := s.bank.Question(topic, index)
	if !ok {
		return SubmitResult{}, fmt.Errorf("%w: %s #%d", ErrNoSuchQuestion, topic, index+1)
	}

	correct := ResolveAnswer(q)
	result := SubmitResult{
		IsCorrect:   Canonicalize(selected) == Canonicalize(correct),
		CorrectText: correct,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if result.IsCorrect {
		k := creditKey{topic, index}
		if _, done := s.credited[k]; !done {
			s.score++
			s.credited[k] = struct{}{}
		}
	}

	s.review = append(s.review, ReviewEntry{
		Question:  q.Text,
		Correct:   correct,
		Submitted: selected,
	})

	return result, nil
}
