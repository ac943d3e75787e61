package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"latexlearn"
)

func main() {
	var (
		topic      = flag.String("topic", "", "Quiz topic (empty lists available topics)")
		dbPath     = flag.String("db", "", "Catalog database to load topics from (default: built-in catalog)")
		curriculum = flag.String("curriculum", "", "Directory of YAML topic packs merged over the catalog")
		generate   = flag.Int("generate", 0, "Number of extra questions to generate for the topic")
		apiKey     = flag.String("api-key", "", "OpenAI API key (or set OPENAI_API_KEY env var)")
		model      = flag.String("model", "", "Override the chat model used for generation")
		verbose    = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	latexlearn.SetVerbose(*verbose)

	catalog := loadCatalog(*dbPath, *curriculum)

	bank := latexlearn.NewBank(catalog)
	if *topic == "" {
		fmt.Println("Available topics:")
		for _, name := range bank.Topics() {
			fmt.Printf("  %s (%d questions)\n", name, bank.Len(name))
		}
		fmt.Println("\nRun with -topic to play.")
		return
	}

	if !bank.Has(*topic) {
		log.Fatalf("Unknown topic: %s", *topic)
	}

	session := latexlearn.NewSession(bank)

	if *generate > 0 {
		if *apiKey == "" {
			*apiKey = os.Getenv("OPENAI_API_KEY")
			if *apiKey == "" {
				log.Fatal("OpenAI API key is required for -generate. Use -api-key flag or set OPENAI_API_KEY environment variable.")
			}
		}
		generateQuestions(bank, *topic, *apiKey, *model, *generate)
	}

	playTopic(session, bank, *topic)
}

func loadCatalog(dbPath, curriculum string) *latexlearn.Catalog {
	catalog := latexlearn.BuiltinCatalog()

	if dbPath != "" {
		db, err := latexlearn.OpenCatalogDB(dbPath)
		if err != nil {
			log.Fatalf("Failed to open catalog database: %v", err)
		}
		defer db.Close()

		stored, err := db.LoadCatalog()
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		if len(stored.Topics) > 0 {
			catalog = stored
		}
	}

	if curriculum != "" {
		if err := catalog.LoadDir(curriculum); err != nil {
			log.Fatalf("Failed to load curriculum packs: %v", err)
		}
	}

	return catalog
}

func generateQuestions(bank *latexlearn.Bank, topic, apiKey, model string, n int) {
	maker := latexlearn.NewQuestionMaker(apiKey)
	if model != "" {
		maker.SetModel(model)
	}
	if logger, err := latexlearn.NewLLMLogger(topic); err == nil {
		maker.SetLogger(logger)
		defer logger.Close()
	} else {
		log.Printf("Failed to create generation log: %v", err)
	}

	ingestor := latexlearn.NewIngestor(bank)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	fmt.Printf("Generating %d extra question(s) for %s...\n", n, topic)
	for i := 0; i < n; i++ {
		_, err := latexlearn.GenerateAndIngest(ctx, maker, ingestor, topic)
		if err != nil {
			var ingestErr *latexlearn.IngestError
			switch {
			case errors.As(err, &ingestErr):
				log.Printf("Generated question rejected (%s): %s", ingestErr.Kind, ingestErr.Raw)
			case errors.Is(err, latexlearn.ErrGenerationUnavailable):
				log.Printf("Model unavailable, stopping generation: %v", err)
				return
			default:
				log.Printf("Generation failed: %v", err)
			}
		}
	}
}

func playTopic(session *latexlearn.Session, bank *latexlearn.Bank, topic string) {
	questions := bank.Load(topic)
	fmt.Printf("\nStarting quiz on: %s (%d questions)\n", topic, len(questions))
	fmt.Println("Answer with the option letter (A-D) or the full answer text.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for i, q := range questions {
		fmt.Printf("Question %d of %d: %s\n", i+1, len(questions), q.Text)

		options := make([]string, len(q.Options))
		for j, opt := range q.Options {
			options[j] = latexlearn.StripLabel(opt)
			fmt.Printf("  %c) %s\n", 'A'+j, options[j])
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		// A bare letter picks the option; anything else is compared as text.
		if idx, ok := latexlearn.LetterIndex(answer); ok && idx < len(options) {
			answer = options[idx]
		}

		result, err := session.Submit(topic, i, answer)
		if errors.Is(err, latexlearn.ErrSelectionMissing) {
			fmt.Println("No answer given, skipping.")
			fmt.Println()
			continue
		}
		if err != nil {
			log.Fatalf("Submit failed: %v", err)
		}

		if result.IsCorrect {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite. Correct answer: %s\n", result.CorrectText)
		}
		fmt.Println()
	}

	fmt.Printf("Final score: %d/%d\n\n", session.Score(), len(questions))

	review := session.Review()
	if len(review) == 0 {
		return
	}
	fmt.Println("Review:")
	for _, entry := range review {
		mark := "x"
		if entry.IsCorrect() {
			mark = "ok"
		}
		fmt.Printf("  [%s] %s\n      correct: %s | yours: %s\n", mark, entry.Question, entry.Correct, entry.Submitted)
	}
}
