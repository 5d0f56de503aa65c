package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/campushub/clubhub/server/auth"
	"github.com/campushub/clubhub/server/database"
)

type LoginVars struct {
	Page
	RedirectURL string
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "login.gohtml", LoginVars{
		Page:        h.newPage(w, r),
		RedirectURL: r.URL.Query().Get("rd"),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render login template", slog.String("error", err.Error()))
	}
}

func (h *handler) DoLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.FormValue("username")
	password := r.FormValue("password")

	session, err := h.Auth.Login(ctx, username, password, r.RemoteAddr)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			setFlash(w, "error", "Invalid username or password")
		case errors.Is(err, auth.ErrTooManyAttempts):
			setFlash(w, "error", "Too many login attempts. Please wait a moment and try again.")
		default:
			slog.ErrorContext(ctx, "Failed to log in", slog.String("username", username), slog.String("error", err.Error()))
			setFlash(w, "error", "Login failed. Please try again.")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	auth.AddSessionCookie(w, session.ID, time.Unix(session.ExpiresAt, 0))
	setFlash(w, "success", fmt.Sprintf("Welcome back, %s!", username))

	redirect := r.FormValue("rd")
	if redirect == "" || redirect[0] != '/' {
		redirect = "/"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

func (h *handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "signup.gohtml", h.newPage(w, r)); err != nil {
		slog.ErrorContext(ctx, "Failed to render signup template", slog.String("error", err.Error()))
	}
}

func (h *handler) DoSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := h.Auth.Signup(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, database.ErrUsernameTaken):
			setFlash(w, "error", "Username already exists")
		case errors.Is(err, auth.ErrInvalidCredentials):
			setFlash(w, "error", "Username and password are required")
		default:
			slog.ErrorContext(ctx, "Failed to sign up", slog.String("username", username), slog.String("error", err.Error()))
			setFlash(w, "error", "Signup failed. Please try again.")
		}
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	setFlash(w, "success", "Account created! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if session, ok := auth.GetSession(r); ok {
		if err := h.Auth.Logout(ctx, session.Session.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to delete session", slog.String("error", err.Error()))
		}
	}

	auth.RemoveSessionCookie(w)
	setFlash(w, "success", "You have been logged out.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
