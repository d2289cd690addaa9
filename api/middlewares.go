package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// requireAuth resolves the session token from the Authorization header and
// passes the authenticated user to the wrapped handler via the request
// context. The header may carry the raw token or a Bearer prefix.
func (app *application) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, errors.New("Authentication required"), http.StatusUnauthorized)
			return
		}
		tokenStr := authHeader
		if parts := strings.Fields(authHeader); len(parts) == 2 && parts[0] == "Bearer" {
			tokenStr = parts[1]
		}
		_, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(app.config.jwtSecret), nil
		})
		if err != nil {
			writeError(w, errors.New("Authentication required"), http.StatusUnauthorized)
			return
		}
		userID, ok := app.sessions.resolve(tokenStr)
		if !ok {
			writeError(w, errors.New("Authentication required"), http.StatusUnauthorized)
			return
		}
		u := app.storage.getUserByID(userID)
		if u == nil {
			writeError(w, errors.New("Invalid session"), http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (app *application) logRequests(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	}
}

type userContext string

const userContextKey userContext = "userContextKey"

func getUserFromRequest(r *http.Request) *user {
	u, _ := r.Context().Value(userContextKey).(*user)
	return u
}

func sessionTokenFromRequest(r *http.Request) string {
	tokenStr := r.Header.Get("Authorization")
	if parts := strings.Fields(tokenStr); len(parts) == 2 && parts[0] == "Bearer" {
		tokenStr = parts[1]
	}
	return tokenStr
}
