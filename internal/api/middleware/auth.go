package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"inkwell/internal/core/users"
)

// Context keys for storing request identity
type contextKey string

const actorKey contextKey = "actor"

// SessionName is the cookie under which the actor identity travels
const SessionName = "inkwell_session"

// Session value keys. The admin flag lives in the authenticated cookie, so
// like ownership it can only change through re-authentication.
const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
	sessionIsAdmin  = "is_admin"
)

// SessionAuth resolves the current actor from the session cookie.
// It is the process's implementation of the identity capability: handlers only
// ever see a *users.Actor (or nil) pulled from the request context.
type SessionAuth struct {
	store sessions.Store
}

// NewSessionAuth creates session-backed auth middleware
func NewSessionAuth(store sessions.Store) *SessionAuth {
	return &SessionAuth{store: store}
}

// WithActor loads the actor, if any, into the request context. Anonymous
// requests pass through untouched; reads decide per-item what they may see.
func (m *SessionAuth) WithActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			// Tampered or stale cookie: treat as anonymous rather than erroring
			log.Printf("Failed to decode session, treating as anonymous: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		id, _ := session.Values[sessionUserID].(string)
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}

		username, _ := session.Values[sessionUsername].(string)
		isAdmin, _ := session.Values[sessionIsAdmin].(bool)

		actor := &users.Actor{ID: id, Username: username, IsAdmin: isAdmin}
		next.ServeHTTP(w, SetActor(r, actor))
	})
}

// SetActor returns a request carrying the actor in its context.
// Handler tests use this to simulate an authenticated request.
func SetActor(r *http.Request, actor *users.Actor) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), actorKey, actor))
}

// RequireAuth rejects requests that carry no actor with 401.
// Must be mounted inside WithActor.
func (m *SessionAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetActor(r) == nil {
			writeAuthError(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SignIn writes the user's identity into a fresh session cookie
func (m *SessionAuth) SignIn(w http.ResponseWriter, r *http.Request, user *users.User) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values[sessionUserID] = user.ID
	session.Values[sessionUsername] = user.Username
	session.Values[sessionIsAdmin] = user.IsAdmin
	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return session.Save(r, w)
}

// SignOut expires the session cookie
func (m *SessionAuth) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return session.Save(r, w)
}

// GetActor returns the request's actor, or nil for anonymous requests
func GetActor(r *http.Request) *users.Actor {
	actor, _ := r.Context().Value(actorKey).(*users.Actor)
	return actor
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(`{"error":"AuthRequired","message":"Authentication required"}`)); err != nil {
		log.Printf("Failed to write auth error: %v", err)
	}
}
