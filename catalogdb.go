package latexlearn

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// CatalogDB is a sqlite-backed topic/question catalog used by the shells to
// seed an in-memory Catalog. Session state (score, credited set, review log)
// is never stored here.
type CatalogDB struct {
	db *sql.DB
}

// OpenCatalogDB opens a catalog database connection
func OpenCatalogDB(dbPath string) (*CatalogDB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &CatalogDB{db: db}, nil
}

// Close closes the database connection
func (c *CatalogDB) Close() error {
	return c.db.Close()
}

// CreateTables creates the necessary tables if they don't exist
func (c *CatalogDB) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS topics (
			name TEXT PRIMARY KEY,
			note TEXT NOT NULL,
			example TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			topic TEXT NOT NULL,
			seq INTEGER NOT NULL,
			text TEXT NOT NULL,
			answer_key TEXT NOT NULL,
			options TEXT NOT NULL,
			PRIMARY KEY (topic, seq)
		)`,
	}

	for _, query := range queries {
		if _, err := c.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute %s: %w", query, err)
		}
	}
	return nil
}

// SaveCatalog replaces the stored catalog with cat.
func (c *CatalogDB) SaveCatalog(cat *Catalog) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM topics"); err != nil {
		return fmt.Errorf("failed to clear topics: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM questions"); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}

	for pos, t := range cat.Topics {
		_, err := tx.Exec(
			"INSERT INTO topics (name, note, example, position) VALUES (?, ?, ?, ?)",
			t.Name, t.Note, t.Example, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert topic %s: %w", t.Name, err)
		}
	}

	for topic, qs := range cat.Questions {
		for seq, q := range qs {
			optionsJSON, err := OptionsToJSON(q.Options)
			if err != nil {
				return err
			}
			_, err = tx.Exec(
				"INSERT INTO questions (topic, seq, text, answer_key, options) VALUES (?, ?, ?, ?, ?)",
				topic, seq, q.Text, q.AnswerKey, optionsJSON,
			)
			if err != nil {
				return fmt.Errorf("failed to insert question %s #%d: %w", topic, seq, err)
			}
		}
	}

	return tx.Commit()
}

// LoadCatalog reads the stored catalog.
func (c *CatalogDB) LoadCatalog() (*Catalog, error) {
	cat := &Catalog{Questions: make(map[string][]Question)}

	rows, err := c.db.Query("SELECT name, note, example FROM topics ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to get topics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t Topic
		if err := rows.Scan(&t.Name, &t.Note, &t.Example); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		cat.Topics = append(cat.Topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating topics: %w", err)
	}

	qrows, err := c.db.Query("SELECT topic, text, answer_key, options FROM questions ORDER BY topic, seq")
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer qrows.Close()

	for qrows.Next() {
		var topic, optionsJSON string
		var q Question
		if err := qrows.Scan(&topic, &q.Text, &q.AnswerKey, &optionsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Options, err = JSONToOptions(optionsJSON)
		if err != nil {
			return nil, err
		}
		cat.Questions[topic] = append(cat.Questions[topic], q)
	}
	if err := qrows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return cat, nil
}

// TopicCounts returns question counts per stored topic.
func (c *CatalogDB) TopicCounts() (map[string]int, error) {
	rows, err := c.db.Query("SELECT topic, COUNT(*) FROM questions GROUP BY topic")
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var topic string
		var n int
		if err := rows.Scan(&topic, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[topic] = n
	}
	return counts, rows.Err()
}

// Helper function to convert options slice to JSON string
func OptionsToJSON(options []string) (string, error) {
	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to marshal options: %w", err)
	}
	return string(data), nil
}

// Helper function to convert JSON string to options slice
func JSONToOptions(optionsJSON string) ([]string, error) {
	var options []string
	err := json.Unmarshal([]byte(optionsJSON), &options)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal options: %w", err)
	}
	return options, nil
}
