package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	jwtauth "github.com/heartmarshall/vocab-quiz/internal/auth"
)

type sessionCodec interface {
	Encode(s jwtauth.Session) (string, error)
	Decode(token string) (jwtauth.Session, error)
	TTL() time.Duration
}

// SessionStore keeps quiz sessions in a signed cookie.
type SessionStore struct {
	codec  sessionCodec
	name   string
	secure bool
	log    *slog.Logger
}

// NewSessionStore creates a SessionStore writing the cookie name.
func NewSessionStore(codec sessionCodec, name string, secure bool, logger *slog.Logger) *SessionStore {
	return &SessionStore{codec: codec, name: name, secure: secure, log: logger.With("component", "session")}
}

// Load returns the session carried by the request.
// A missing, expired or forged cookie yields an empty session.
func (s *SessionStore) Load(r *http.Request) jwtauth.Session {
	c, err := r.Cookie(s.name)
	if err != nil {
		return jwtauth.Session{}
	}

	sess, err := s.codec.Decode(c.Value)
	if err != nil {
		s.log.DebugContext(r.Context(), "discarding quiz session", slog.String("error", err.Error()))
		return jwtauth.Session{}
	}
	return sess
}

// Save writes sess as the session cookie.
func (s *SessionStore) Save(w http.ResponseWriter, sess jwtauth.Session) error {
	if sess.Flash == nil && !sess.Quiz.HasCurrentWord() {
		s.clear(w)
		return nil
	}

	value, err := s.codec.Encode(sess)
	if err != nil {
		return fmt.Errorf("encode quiz session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *SessionStore) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
