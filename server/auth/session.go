package auth

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/campushub/clubhub/server/database"
)

const CookieName = "session"

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890")

type sessionKey struct{}

var sessionContextKey = &sessionKey{}

func SetSession(ctx context.Context, session database.SessionWithUser) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// GetSession returns the session attached by the middleware, if any.
func GetSession(r *http.Request) (database.SessionWithUser, bool) {
	session, ok := r.Context().Value(sessionContextKey).(database.SessionWithUser)
	return session, ok
}

func RandomStr(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func AddSessionCookie(w http.ResponseWriter, session string, expiration time.Time) {
	cookie := http.Cookie{
		Name:     CookieName,
		Value:    session,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}

func RemoveSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
		HttpOnly: true,
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}
