package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/campushub/clubhub/server/database"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; login never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTooManyAttempts is returned when the per-address login limiter
	// rejects an attempt.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

func New(cfg Config, db *database.Database) *Auth {
	return &Auth{
		cfg:      cfg,
		db:       db,
		limiters: make(map[string]*rate.Limiter),
	}
}

type Auth struct {
	cfg Config
	db  *database.Database

	limiters   map[string]*rate.Limiter
	limitersMu sync.Mutex
}

func (a *Auth) Signup(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	hash, err := HashPassword(password, a.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.db.CreateUser(ctx, database.User{
		Username:     username,
		PasswordHash: hash,
		Role:         database.RoleStudent,
		CreatedAt:    time.Now().Unix(),
	})
}

func (a *Auth) Login(ctx context.Context, username string, password string, remoteAddr string) (*database.Session, error) {
	if !a.limiter(remoteAddr).Allow() {
		return nil, ErrTooManyAttempts
	}

	user, err := a.db.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := database.Session{
		ID:        RandomStr(32),
		Username:  user.Username,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(time.Duration(a.cfg.SessionTTL)).Unix(),
	}
	if err = a.db.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (a *Auth) Logout(ctx context.Context, sessionID string) error {
	return a.db.DeleteSession(ctx, sessionID)
}

// Middleware resolves the session cookie and attaches the session with
// its user to the request context. Requests without a valid session pass
// through anonymously; handlers that need a login use RequireLogin.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := a.db.GetSession(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) || errors.Is(err, database.ErrSessionExpired) {
				RemoveSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			slog.ErrorContext(ctx, "Failed to get session", slog.String("error", err.Error()))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(SetSession(ctx, *session)))
	})
}

// RequireLogin redirects anonymous requests to the login page, carrying
// the original path so login can return the user where they started.
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r); !ok {
			u := url.URL{
				Path:     "/login",
				RawQuery: url.Values{"rd": {r.URL.Path}}.Encode(),
			}
			http.Redirect(w, r, u.String(), http.StatusFound)
			return
		}
		next(w, r)
	}
}

func (a *Auth) limiter(remoteAddr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	a.limitersMu.Lock()
	defer a.limitersMu.Unlock()

	limiter, ok := a.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Duration(a.cfg.LoginEvery)), a.cfg.LoginBurst)
		a.limiters[host] = limiter
	}
	return limiter
}
