package auth

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-quiz/internal/domain"
)

// Flash is a one-shot message shown on the next page render.
type Flash struct {
	Level   string `json:"l"`
	Message string `json:"m"`
}

// Session is the client-held state of the browser and free-text quiz.
type Session struct {
	Quiz  domain.QuizSession
	Flash *Flash
}

type sessionClaims struct {
	jwt.RegisteredClaims
	WordID string `json:"wid,omitempty"`
	Flash  *Flash `json:"fl,omitempty"`
}

// SessionCodec signs quiz sessions into cookie values and verifies them.
// Its key is derived from the JWT secret so session cookies never validate
// as access tokens and vice versa.
type SessionCodec struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewSessionCodec creates a codec whose tokens expire after ttl.
func NewSessionCodec(secret, issuer string, ttl time.Duration) *SessionCodec {
	k := sha256.Sum256([]byte("quiz-session:" + secret))
	return &SessionCodec{key: k[:], issuer: issuer, ttl: ttl}
}

// TTL returns the lifetime of encoded sessions.
func (c *SessionCodec) TTL() time.Duration { return c.ttl }

// Encode signs s into a compact token.
func (c *SessionCodec) Encode(s Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Flash: s.Flash,
	}
	if s.Quiz.HasCurrentWord() {
		claims.WordID = s.Quiz.CurrentWordID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies a token produced by Encode and returns its session.
func (c *SessionCodec) Decode(token string) (Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Session{}, fmt.Errorf("parse session: %w", err)
	}

	s := Session{Flash: claims.Flash}
	if claims.WordID != "" {
		id, err := uuid.Parse(claims.WordID)
		if err != nil {
			return Session{}, fmt.Errorf("invalid session word id: %w", err)
		}
		s.Quiz = domain.NewQuizSession(id)
	}
	return s, nil
}
