package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "flash"

// Flash is a one-shot message carried across a redirect, in the style of
// the classic post/redirect/get flow. Category is success, error or info.
type Flash struct {
	Category string
	Message  string
}

func setFlash(w http.ResponseWriter, category string, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		MaxAge:   60,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})
}

// popFlashes returns the queued flash message, if any, and clears it.
func popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})

	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, ok := strings.Cut(value, "|")
	if !ok || message == "" {
		return nil
	}

	return []Flash{{Category: category, Message: message}}
}
