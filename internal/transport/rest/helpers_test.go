package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	jwtauth "github.com/heartmarshall/vocab-quiz/internal/auth"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out vocabulary_service_mock_test.go -pkg rest . vocabularyService
//go:generate moq -out translation_checker_mock_test.go -pkg rest . translationChecker
//go:generate moq -out quiz_service_mock_test.go -pkg rest . quizService
//go:generate moq -out quiz_page_service_mock_test.go -pkg rest . quizPageService
//go:generate moq -out high_score_service_mock_test.go -pkg rest . highScoreService

const (
	testSessionSecret = "test-secret-at-least-32-chars-long-for-security"
	testCookie        = "quiz_session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSessions() *SessionStore {
	codec := jwtauth.NewSessionCodec(testSessionSecret, "vocab-quiz-test", time.Hour)
	return NewSessionStore(codec, testCookie, false, testLogger())
}

// jsonRequest builds a request with body encoded as JSON. A string body is sent verbatim.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}

// sessionCookie returns the quiz cookie set by the response, or nil.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

// withSession attaches the session to req the way a browser would.
func withSession(t *testing.T, req *http.Request, s jwtauth.Session) *http.Request {
	t.Helper()
	codec := jwtauth.NewSessionCodec(testSessionSecret, "vocab-quiz-test", time.Hour)
	value, err := codec.Encode(s)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: value})
	return req
}

// loadSession decodes the session the response stored in its cookie.
func loadSession(t *testing.T, rec *httptest.ResponseRecorder) jwtauth.Session {
	t.Helper()
	c := sessionCookie(rec)
	require.NotNil(t, c, "expected session cookie")
	if c.MaxAge < 0 {
		return jwtauth.Session{}
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	return newTestSessions().Load(req)
}
