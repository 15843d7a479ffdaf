package rest

import (
	"net/http"

	"github.com/heartmarshall/vocab-quiz/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Words     *WordHandler
	Quiz      *QuizHandler
	Page      *QuizPage
	HighScore *HighScoreHandler
}

// NewRouter registers every route. credentialLimit wraps the endpoints that
// accept passwords or tokens. Global middleware is applied by the caller.
func NewRouter(h Handlers, credentialLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	limited := func(fn http.HandlerFunc) http.Handler { return credentialLimit(fn) }
	mux.Handle("POST /api/users/auth/register", limited(h.Auth.Register))
	mux.Handle("POST /api/users/auth/login", limited(h.Auth.Login))
	mux.Handle("POST /api/users/auth/token/refresh", limited(h.Auth.Refresh))
	mux.Handle("POST /api/users/auth/token/verify", limited(h.Auth.Verify))
	mux.Handle("POST /api/users/auth/logout", middleware.RequireUser(http.HandlerFunc(h.Auth.Logout)))

	mux.Handle("GET /api/users/auth/highscore/{difficulty}", middleware.RequireUser(http.HandlerFunc(h.HighScore.Get)))
	mux.Handle("POST /api/users/auth/highscore/{difficulty}", middleware.RequireUser(http.HandlerFunc(h.HighScore.Submit)))

	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("POST /api/words", h.Words.Create)
	mux.HandleFunc("GET /api/words/random", h.Words.Random)
	mux.HandleFunc("PUT /api/words/by-text", h.Words.Upsert)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)
	mux.HandleFunc("PUT /api/words/{id}", h.Words.Update)
	mux.HandleFunc("DELETE /api/words/{id}", h.Words.Delete)
	mux.HandleFunc("POST /api/words/{id}/check-translation", h.Words.CheckTranslation)

	mux.HandleFunc("GET /api/quiz/word", h.Quiz.Word)
	mux.HandleFunc("POST /api/quiz/answer", h.Quiz.Answer)
	mux.HandleFunc("GET /api/quiz/choice", h.Quiz.Choice)
	mux.HandleFunc("POST /api/quiz/choice/check", h.Quiz.CheckChoice)

	mux.HandleFunc("GET "+QuizPagePath+"{$}", h.Page.Show)
	mux.HandleFunc("POST "+QuizPagePath+"{$}", h.Page.Submit)

	return mux
}
