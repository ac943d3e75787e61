package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"latexlearn"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// userState is the in-memory per-visitor state: an isolated working copy of
// the question bank plus the quiz session over it. Only the session ID lives
// in the cookie.
type userState struct {
	bank    *latexlearn.Bank
	session *latexlearn.Session
	ingest  *latexlearn.Ingestor
}

type Server struct {
	catalog   *latexlearn.Catalog
	maker     *latexlearn.QuestionMaker // nil when no API key is configured
	store     *sessions.CookieStore
	templates map[string]*template.Template

	mu     sync.Mutex
	states map[string]*userState
}

func main() {
	latexlearn.SetVerbose(os.Getenv("VERBOSE") != "")

	catalog := latexlearn.BuiltinCatalog()

	if dbPath := os.Getenv("CATALOG_DB"); dbPath != "" {
		db, err := latexlearn.OpenCatalogDB(dbPath)
		if err != nil {
			log.Fatalf("Failed to open catalog database: %v", err)
		}
		stored, err := db.LoadCatalog()
		db.Close()
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		if len(stored.Topics) > 0 {
			catalog = stored
			log.Printf("Loaded catalog from %s (%d topics)", dbPath, len(catalog.Topics))
		}
	}

	if dir := os.Getenv("CURRICULUM_DIR"); dir != "" {
		if err := catalog.LoadDir(dir); err != nil {
			log.Fatalf("Failed to load curriculum packs: %v", err)
		}
	}

	var maker *latexlearn.QuestionMaker
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		maker = latexlearn.NewQuestionMaker(apiKey)
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			maker.SetModel(model)
		}
	} else {
		log.Printf("OPENAI_API_KEY not set, question generation disabled")
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "latexlearn-dev-secret"
		log.Printf("SESSION_SECRET not set, signing cookies with the built-in development secret")
	}
	store := sessions.NewCookieStore([]byte(secret))

	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"letter": func(i int) string {
			return string(rune('A' + i))
		},
	}

	templates := make(map[string]*template.Template)
	templateFiles := []struct {
		name string
		file string
	}{
		{"home", "templates/home.html"},
		{"compiler", "templates/compiler.html"},
		{"teacher", "templates/teacher.html"},
		{"quiz", "templates/quiz.html"},
	}
	for _, tmpl := range templateFiles {
		templates[tmpl.name] = template.Must(template.New(tmpl.name).Funcs(funcMap).ParseFiles("templates/base.html", tmpl.file))
	}

	server := &Server{
		catalog:   catalog,
		maker:     maker,
		store:     store,
		templates: templates,
		states:    make(map[string]*userState),
	}

	r := chi.NewRouter()
	r.Get("/", server.handleHome)
	r.Get("/compiler", server.handleCompiler)
	r.Post("/compiler", server.handleCompiler)
	r.Get("/teacher", server.handleTeacherIndex)
	r.Get("/teacher/{topic}", server.handleTeacher)
	r.Post("/teacher/{topic}", server.handleTeacher)
	r.Get("/quiz", server.handleQuizIndex)
	r.Get("/quiz/{topic}", server.handleQuizPage)
	r.Post("/quiz/{topic}/answer", server.handleAnswer)
	r.Post("/quiz/{topic}/generate", server.handleGenerate)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8180"
	}

	log.Printf("Starting server on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}

// state returns the visitor's state, creating it (with a fresh bank copy) on
// first contact.
func (s *Server) state(w http.ResponseWriter, r *http.Request) *userState {
	cookie, _ := s.store.Get(r, "latexlearn-session")

	sid, _ := cookie.Values["sid"].(string)
	if sid == "" {
		sid = latexlearn.NewSessionID()
		cookie.Values["sid"] = sid
		if err := cookie.Save(r, w); err != nil {
			log.Printf("Session save error: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sid]
	if !ok {
		bank := latexlearn.NewBank(s.catalog)
		st = &userState{
			bank:    bank,
			session: latexlearn.NewSession(bank),
			ingest:  latexlearn.NewIngestor(bank),
		}
		s.states[sid] = st
	}
	return st
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates[name].ExecuteTemplate(w, "base.html", data); err != nil {
		log.Printf("Template error in %s: %v", name, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

func topicParam(r *http.Request) string {
	raw := chi.URLParam(r, "topic")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	st := s.state(w, r)
	s.render(w, "home", map[string]interface{}{
		"Section": "home",
		"Topics":  st.bank.Topics(),
		"Score":   st.session.Score(),
	})
}

func (s *Server) handleCompiler(w http.ResponseWriter, r *http.Request) {
	source := `E=mc^2`
	var validationErr string

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		source = r.FormValue("source")
		if err := latexlearn.ValidateLaTeX(source); err != nil {
			validationErr = err.Error()
		}
	}

	s.render(w, "compiler", map[string]interface{}{
		"Section":  "compiler",
		"Source":   source,
		"Error":    validationErr,
		"Snippets": latexlearn.SnippetCategories,
	})
}

func (s *Server) handleTeacherIndex(w http.ResponseWriter, r *http.Request) {
	if len(s.catalog.Topics) == 0 {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/teacher/"+url.PathEscape(s.catalog.Topics[0].Name), http.StatusSeeOther)
}

func (s *Server) handleTeacher(w http.ResponseWriter, r *http.Request) {
	name := topicParam(r)
	topic, ok := s.catalog.Topic(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	source := topic.Example
	var validationErr string
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		source = r.FormValue("source")
		if err := latexlearn.ValidateLaTeX(source); err != nil {
			validationErr = err.Error()
		}
	}

	s.render(w, "teacher", map[string]interface{}{
		"Section": "teacher",
		"Topic":   topic,
		"Topics":  s.catalog.Topics,
		"Source":  source,
		"Error":   validationErr,
	})
}

func (s *Server) handleQuizIndex(w http.ResponseWriter, r *http.Request) {
	st := s.state(w, r)
	topics := st.bank.Topics()
	if len(topics) == 0 {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/quiz/"+url.PathEscape(topics[0]), http.StatusSeeOther)
}

// quizQuestion is the per-question view for the quiz template: options are
// shown with labels stripped, exactly as they are compared.
type quizQuestion struct {
	Index    int
	Text     string
	Options  []string
	Credited bool
}

type answerFeedback struct {
	Index       int
	IsCorrect   bool
	CorrectText string
}

func (s *Server) renderQuiz(w http.ResponseWriter, r *http.Request, st *userState, topic, notice string, feedback *answerFeedback) {
	questions := st.bank.Load(topic)
	view := make([]quizQuestion, len(questions))
	for i, q := range questions {
		opts := make([]string, len(q.Options))
		for j, opt := range q.Options {
			opts[j] = latexlearn.StripLabel(opt)
		}
		view[i] = quizQuestion{
			Index:    i,
			Text:     q.Text,
			Options:  opts,
			Credited: st.session.Attempted(topic, i),
		}
	}

	s.render(w, "quiz", map[string]interface{}{
		"Section":         "quiz",
		"Topic":           topic,
		"Topics":          st.bank.Topics(),
		"Questions":       view,
		"Score":           st.session.Score(),
		"Review":          st.session.Review(),
		"Notice":          notice,
		"Feedback":        feedback,
		"GenerateEnabled": s.maker != nil,
	})
}

func (s *Server) handleQuizPage(w http.ResponseWriter, r *http.Request) {
	st := s.state(w, r)
	topic := topicParam(r)
	if !st.bank.Has(topic) {
		http.NotFound(w, r)
		return
	}
	s.renderQuiz(w, r, st, topic, "", nil)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	st := s.state(w, r)
	topic := topicParam(r)
	if !st.bank.Has(topic) {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	index, err := strconv.Atoi(r.FormValue("index"))
	if err != nil {
		http.Error(w, "Bad question index", http.StatusBadRequest)
		return
	}

	result, err := st.session.Submit(topic, index, r.FormValue("selected"))
	switch {
	case errors.Is(err, latexlearn.ErrSelectionMissing):
		s.renderQuiz(w, r, st, topic, "Please select an option first.", nil)
		return
	case errors.Is(err, latexlearn.ErrNoSuchQuestion):
		http.NotFound(w, r)
		return
	case err != nil:
		log.Printf("Submit failed: %v", err)
		http.Error(w, "Submit failed", http.StatusInternalServerError)
		return
	}

	s.renderQuiz(w, r, st, topic, "", &answerFeedback{
		Index:       index,
		IsCorrect:   result.IsCorrect,
		CorrectText: result.CorrectText,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	st := s.state(w, r)
	topic := topicParam(r)
	if !st.bank.Has(topic) {
		http.NotFound(w, r)
		return
	}

	if s.maker == nil {
		s.renderQuiz(w, r, st, topic, "Model unavailable: no API key configured.", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	_, err := latexlearn.GenerateAndIngest(ctx, s.maker, st.ingest, topic)
	if err != nil {
		var ingestErr *latexlearn.IngestError
		switch {
		case errors.As(err, &ingestErr):
			s.renderQuiz(w, r, st, topic,
				fmt.Sprintf("Generated question was rejected (%s). Raw output: %s", ingestErr.Kind, ingestErr.Raw), nil)
		case errors.Is(err, latexlearn.ErrGenerationUnavailable):
			s.renderQuiz(w, r, st, topic, "Model unavailable, please try again later.", nil)
		default:
			log.Printf("Generate failed: %v", err)
			s.renderQuiz(w, r, st, topic, "Question generation failed.", nil)
		}
		return
	}

	s.renderQuiz(w, r, st, topic, "New question added to the end of this topic.", nil)
}
