package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/clubhub/internal/xtime"
	"github.com/campushub/clubhub/server/auth"
	"github.com/campushub/clubhub/server/database"
)

func newTestAuth(t *testing.T, cfg auth.Config) (*auth.Auth, *database.Database) {
	t.Helper()

	db, err := database.New(database.Config{Path: filepath.Join(t.TempDir(), "clubhub.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.MinCost
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = xtime.Duration(time.Hour)
	}
	if cfg.LoginEvery == 0 {
		cfg.LoginEvery = xtime.Duration(time.Second)
	}
	if cfg.LoginBurst == 0 {
		cfg.LoginBurst = 100
	}

	return auth.New(cfg, db), db
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, auth.VerifyPassword(hash, "hunter2"))
	assert.False(t, auth.VerifyPassword(hash, "hunter3"))
}

func TestSignup(t *testing.T) {
	a, db := newTestAuth(t, auth.Config{})
	ctx := context.Background()

	require.NoError(t, a.Signup(ctx, "alice", "hunter2"))

	user, err := db.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, database.RoleStudent, user.Role)
	assert.True(t, auth.VerifyPassword(user.PasswordHash, "hunter2"))

	require.ErrorIs(t, a.Signup(ctx, "alice", "other"), database.ErrUsernameTaken)
	require.ErrorIs(t, a.Signup(ctx, "  ", "hunter2"), auth.ErrInvalidCredentials)
	require.ErrorIs(t, a.Signup(ctx, "carol", ""), auth.ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	a, db := newTestAuth(t, auth.Config{})
	ctx := context.Background()

	require.NoError(t, a.Signup(ctx, "alice", "hunter2"))

	session, err := a.Login(ctx, "alice", "hunter2", "127.0.0.1:1234")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "alice", session.Username)
	assert.Greater(t, session.ExpiresAt, time.Now().Unix())

	stored, err := db.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.User.Username)

	_, err = a.Login(ctx, "alice", "wrong", "127.0.0.1:1234")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = a.Login(ctx, "nobody", "hunter2", "127.0.0.1:1234")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRateLimit(t *testing.T) {
	a, _ := newTestAuth(t, auth.Config{
		LoginEvery: xtime.Duration(time.Hour),
		LoginBurst: 2,
	})
	ctx := context.Background()

	require.NoError(t, a.Signup(ctx, "alice", "hunter2"))

	for range 2 {
		_, err := a.Login(ctx, "alice", "wrong", "10.0.0.1:1234")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	}

	_, err := a.Login(ctx, "alice", "hunter2", "10.0.0.1:1234")
	require.ErrorIs(t, err, auth.ErrTooManyAttempts)

	// Other addresses keep their own budget.
	_, err = a.Login(ctx, "alice", "hunter2", "10.0.0.2:1234")
	require.NoError(t, err)
}

func TestLogout(t *testing.T) {
	a, db := newTestAuth(t, auth.Config{})
	ctx := context.Background()

	require.NoError(t, a.Signup(ctx, "alice", "hunter2"))
	session, err := a.Login(ctx, "alice", "hunter2", "127.0.0.1:1234")
	require.NoError(t, err)

	require.NoError(t, a.Logout(ctx, session.ID))

	_, err = db.GetSession(ctx, session.ID)
	require.ErrorIs(t, err, database.ErrNotFound)
}

func TestMiddleware(t *testing.T) {
	a, _ := newTestAuth(t, auth.Config{})
	ctx := context.Background()

	require.NoError(t, a.Signup(ctx, "alice", "hunter2"))
	session, err := a.Login(ctx, "alice", "hunter2", "127.0.0.1:1234")
	require.NoError(t, err)

	var got database.SessionWithUser
	var ok bool
	handler := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.GetSession(r)
	}))

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, ok)
	})

	t.Run("valid cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: session.ID})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, ok)
		assert.Equal(t, "alice", got.User.Username)
	})

	t.Run("unknown cookie is cleared", func(t *testing.T) {
		ok = false
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "bogus"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, ok)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	})
}

func TestRequireLogin(t *testing.T) {
	called := false
	handler := auth.RequireLogin(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/clubs/new", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?rd=%2Fclubs%2Fnew", rec.Header().Get("Location"))
}
