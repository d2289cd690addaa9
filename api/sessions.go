package main

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// sessionRegistry maps issued tokens to user ids. The map is authoritative:
// a token that parses but was never issued here, or was revoked by logout,
// does not resolve. Sessions carry no expiry.
type sessionRegistry struct {
	mu     sync.RWMutex
	secret []byte
	tokens map[string]int
}

func newSessionRegistry(secret []byte) *sessionRegistry {
	return &sessionRegistry{
		secret: secret,
		tokens: make(map[string]int),
	}
}

// create mints a signed token for the user and records it. The token_id
// claim makes every token unique, so concurrent logins for the same user
// yield distinct sessions.
func (r *sessionRegistry) create(userID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   userID,
		"token_id":  uuid.NewString(),
		"issued_at": time.Now().Format(time.RFC3339),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
	return token, nil
}

func (r *sessionRegistry) resolve(token string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	userID, ok := r.tokens[token]
	return userID, ok
}

func (r *sessionRegistry) revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}
