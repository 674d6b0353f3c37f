package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"minisocial/internal/common"
	"minisocial/internal/dbmysql"
)

func TestManager_IssueAndResolve(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue(&dbmysql.User{ID: 7, Username: "alice", IsAdmin: true})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := m.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), sess.UserID)
	require.Equal(t, "alice", sess.Username)
	require.True(t, sess.IsAdmin)
}

func TestManager_ResolveRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Resolve("not-a-token")
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestManager_ResolveRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", time.Hour)
	resolver := NewManager("secret-b", time.Hour)

	token, err := issuer.Issue(&dbmysql.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = resolver.Resolve(token)
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestManager_ResolveRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Issue(&dbmysql.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = m.Resolve(token)
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestManager_Revoke(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue(&dbmysql.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = m.Resolve(token)
	require.NoError(t, err)

	m.Revoke(token)
	_, err = m.Resolve(token)
	require.ErrorIs(t, err, common.ErrUnauthenticated)

	// revoking twice stays a no-op
	m.Revoke(token)
}

func TestMiddleware(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	token, err := m.Issue(&dbmysql.User{ID: 3, Username: "carol"})
	require.NoError(t, err)

	var gotSession *Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		require.True(t, ok)
		gotSession = sess
		w.WriteHeader(http.StatusOK)
	})
	handler := m.Middleware(next)

	t.Run("valid token passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/feed", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, uint64(3), gotSession.UserID)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/feed", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/feed", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		m.Revoke(token)
		req := httptest.NewRequest("GET", "/api/feed", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
