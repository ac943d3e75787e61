package latexlearn

import (
	"sort"
	"sync"
)

// Bank is a session's working copy of the question catalog: per-topic ordered
// question sequences that grow by append only. A question's index within its
// topic is assigned once and never renumbered, because scoring keys on it.
type Bank struct {
	mu     sync.RWMutex
	topics map[string][]Question
	order  []string
}

// NewBank builds an independent working copy of a catalog's question bank so
// that appends never leak into the catalog or into other sessions.
func NewBank(cat *Catalog) *Bank {
	b := &Bank{topics: make(map[string][]Question)}

	for _, t := range cat.Topics {
		if qs, ok := cat.Questions[t.Name]; ok {
			b.topics[t.Name] = append([]Question(nil), qs...)
			b.order = append(b.order, t.Name)
		}
	}

	// Question-only topics with no Topic entry come after, in name order.
	var extra []string
	for name := range cat.Questions {
		if _, ok := b.topics[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		b.topics[name] = append([]Question(nil), cat.Questions[name]...)
		b.order = append(b.order, name)
	}

	return b
}

// Topics returns the topic names in display order.
func (b *Bank) Topics() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.order...)
}

// Has reports whether topic exists in the bank.
func (b *Bank) Has(topic string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.topics[topic]
	return ok
}

// Load returns a snapshot of the topic's question sequence in display order.
func (b *Bank) Load(topic string) []Question {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Question(nil), b.topics[topic]...)
}

// Question returns the question at index within topic.
func (b *Bank) Question(topic string, index int) (Question, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	qs, ok := b.topics[topic]
	if !ok || index < 0 || index >= len(qs) {
		return Question{}, false
	}
	return qs[index], true
}

// Len returns the number of questions in topic.
func (b *Bank) Len(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// Append adds q to the end of the topic's sequence and returns the index it
// was stored at. Appending to an unknown topic creates it.
func (b *Bank) Append(topic string, q Question) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	qs, ok := b.topics[topic]
	if !ok {
		b.order = append(b.order, topic)
	}
	b.topics[topic] = append(qs, q)
	return len(qs)
}
