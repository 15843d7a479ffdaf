package rest

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	jwtauth "github.com/heartmarshall/vocab-quiz/internal/auth"
	"github.com/heartmarshall/vocab-quiz/internal/domain"
	"github.com/heartmarshall/vocab-quiz/internal/service/quiz"
)

// QuizPagePath is where the browser quiz is mounted.
const QuizPagePath = "/random-english-word/"

//go:embed templates/quiz.html
var templateFS embed.FS

var quizTemplate = template.Must(template.ParseFS(templateFS, "templates/quiz.html"))

type quizPageService interface {
	PresentRandomWord(ctx context.Context) (*quiz.PresentedWord, domain.QuizSession, error)
	CurrentWord(ctx context.Context, session domain.QuizSession) (*quiz.PresentedWord, error)
	SubmitFreeTextAnswer(ctx context.Context, session domain.QuizSession, rawInput string) (*quiz.AnswerResult, domain.QuizSession, error)
}

// QuizPage serves the HTML free-text quiz.
type QuizPage struct {
	quiz     quizPageService
	sessions *SessionStore
	log      *slog.Logger
}

// NewQuizPage creates a QuizPage.
func NewQuizPage(svc quizPageService, sessions *SessionStore, logger *slog.Logger) *QuizPage {
	return &QuizPage{quiz: svc, sessions: sessions, log: logger.With("handler", "quiz_page")}
}

type pageData struct {
	Action    string
	Word      *quiz.PresentedWord
	Flash     *jwtauth.Flash
	Warning   string
	FormError string
	Input     string
}

// Show handles GET: consumes the pending flash and presents a new word.
func (p *QuizPage) Show(w http.ResponseWriter, r *http.Request) {
	data := pageData{Action: QuizPagePath, Flash: p.sessions.Load(r).Flash}

	word, session, err := p.quiz.PresentRandomWord(r.Context())
	switch {
	case errors.Is(err, domain.ErrNoWordsAvailable):
		data.Warning = "There are no words in the database yet. Please add some words."
	case err != nil:
		p.fail(w, r, err)
		return
	default:
		data.Word = word
	}

	if err := p.sessions.Save(w, jwtauth.Session{Quiz: session}); err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, r, http.StatusOK, data)
}

// Submit handles POST: checks the answer, then redirects back with a flash.
// A blank answer re-renders the form for the same word.
func (p *QuizPage) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := r.PostForm.Get("translation")
	current := p.sessions.Load(r).Quiz

	result, next, err := p.quiz.SubmitFreeTextAnswer(r.Context(), current, input)
	if errors.Is(err, domain.ErrInvalidInput) {
		p.rerender(w, r, current, input)
		return
	}

	var flash *jwtauth.Flash
	switch {
	case err == nil:
		flash = &jwtauth.Flash{Level: "error", Message: answerMessage(result)}
		if result.Correct {
			flash.Level = "success"
		}
	case errors.Is(err, domain.ErrNoCurrentWord), errors.Is(err, domain.ErrWordNotFound):
		_, msg, _ := errorStatus(err)
		flash = &jwtauth.Flash{Level: "error", Message: msg}
	default:
		p.fail(w, r, err)
		return
	}

	if err := p.sessions.Save(w, jwtauth.Session{Quiz: next, Flash: flash}); err != nil {
		p.fail(w, r, err)
		return
	}
	http.Redirect(w, r, QuizPagePath, http.StatusSeeOther)
}

func (p *QuizPage) rerender(w http.ResponseWriter, r *http.Request, current domain.QuizSession, input string) {
	word, err := p.quiz.CurrentWord(r.Context(), current)
	if errors.Is(err, domain.ErrNoCurrentWord) || errors.Is(err, domain.ErrWordNotFound) {
		_, msg, _ := errorStatus(err)
		if err := p.sessions.Save(w, jwtauth.Session{Flash: &jwtauth.Flash{Level: "error", Message: msg}}); err != nil {
			p.fail(w, r, err)
			return
		}
		http.Redirect(w, r, QuizPagePath, http.StatusSeeOther)
		return
	}
	if err != nil {
		p.fail(w, r, err)
		return
	}

	p.render(w, r, http.StatusOK, pageData{
		Action:    QuizPagePath,
		Word:      word,
		FormError: "This field is required.",
		Input:     input,
	})
}

func (p *QuizPage) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	var buf bytes.Buffer
	if err := quizTemplate.Execute(&buf, data); err != nil {
		p.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w) //nolint:errcheck
}

func (p *QuizPage) fail(w http.ResponseWriter, r *http.Request, err error) {
	p.log.ErrorContext(r.Context(), "quiz page failed", slog.String("error", err.Error()))
	http.Error(w, "Internal server error.", http.StatusInternalServerError)
}
