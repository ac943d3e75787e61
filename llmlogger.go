package latexlearn

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LLMLogger writes a transcript of all generation-service interactions for
// one topic to a log file.
type LLMLogger struct {
	file  *os.File
	mu    sync.Mutex
	topic string
}

// NewLLMLogger creates a transcript logger for a topic.
func NewLLMLogger(topic string) (*LLMLogger, error) {
	if err := os.MkdirAll("log", 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	slug := strings.ToLower(strings.ReplaceAll(topic, " ", "_"))
	filename := filepath.Join("log", fmt.Sprintf("%s-%d.log", slug, time.Now().Unix()))
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := &LLMLogger{
		file:  file,
		topic: topic,
	}

	logger.Logf("=== Question Generation Log ===\n")
	logger.Logf("Topic: %s\n", topic)
	logger.Logf("Started: %s\n", time.Now().Format(time.RFC3339))
	logger.Logf("===============================\n\n")

	return logger, nil
}

// Logf writes a formatted log entry with timestamp
func (ll *LLMLogger) Logf(format string, args ...interface{}) {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	message := fmt.Sprintf(format, args...)

	fmt.Fprintf(ll.file, "[%s] %s", timestamp, message)
	ll.file.Sync()
}

// LogLLMRequest logs an LLM request
func (ll *LLMLogger) LogLLMRequest(module, prompt string) {
	ll.Logf("=== LLM REQUEST (%s) ===\n", module)
	ll.Logf("Prompt:\n%s\n", prompt)
	ll.Logf("=====================\n\n")
}

// LogLLMResponse logs an LLM response
func (ll *LLMLogger) LogLLMResponse(module, response string) {
	ll.Logf("=== LLM RESPONSE (%s) ===\n", module)
	ll.Logf("Response:\n%s\n", response)
	ll.Logf("======================\n\n")
}

// LogIngestResult logs the outcome of ingesting a generated question.
func (ll *LLMLogger) LogIngestResult(topic string, err error) {
	if err != nil {
		ll.Logf("Ingest for %s: REJECTED - %v\n", topic, err)
		return
	}
	ll.Logf("Ingest for %s: accepted\n", topic)
}

// Close closes the log file
func (ll *LLMLogger) Close() error {
	ll.mu.Lock()
	defer ll.mu.Unlock()

	if ll.file != nil {
		timestamp := time.Now().Format("15:04:05.000")
		fmt.Fprintf(ll.file, "[%s] === Generation Log Closed: %s ===\n", timestamp, time.Now().Format(time.RFC3339))
		return ll.file.Close()
	}
	return nil
}
