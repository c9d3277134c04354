package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/core/users"
)

func newTestAuth() *SessionAuth {
	return NewSessionAuth(sessions.NewCookieStore([]byte("test-session-secret")))
}

func captureActor(t *testing.T, dest **users.Actor) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*dest = GetActor(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionRoundTrip(t *testing.T) {
	auth := newTestAuth()

	alice := &users.User{ID: "user-1", Username: "alice", Email: "a@b.com", IsAdmin: true}

	// Sign in and capture the cookie
	signInRec := httptest.NewRecorder()
	signInReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, auth.SignIn(signInRec, signInReq, alice))

	cookies := signInRec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Replay the cookie through WithActor
	var got *users.Actor
	handler := auth.WithActor(captureActor(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.IsAdmin)
}

func TestAnonymousRequests(t *testing.T) {
	auth := newTestAuth()

	t.Run("pass through WithActor with no actor", func(t *testing.T) {
		var got *users.Actor
		handler := auth.WithActor(captureActor(t, &got))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, got)
	})

	t.Run("are rejected by RequireAuth", func(t *testing.T) {
		handler := auth.WithActor(auth.RequireAuth(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run for anonymous requests")
			})))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage cookies are treated as anonymous", func(t *testing.T) {
		var got *users.Actor
		handler := auth.WithActor(captureActor(t, &got))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-session"})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, got)
	})
}

func TestSignOut(t *testing.T) {
	auth := newTestAuth()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	require.NoError(t, auth.SignOut(rec, req))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge, "logout must expire the cookie")
}
