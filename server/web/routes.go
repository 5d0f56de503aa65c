package web

import (
	"log/slog"
	"net/http"
	"path"

	"github.com/campushub/clubhub/internal/middlewares"
	"github.com/campushub/clubhub/server"
	"github.com/campushub/clubhub/server/auth"
)

type handler struct {
	*server.Server
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server: srv,
	}

	fileServer := http.FileServer(h.StaticFS)
	var fs http.Handler
	if srv.Cfg.Dev {
		fs = fileServer
	} else {
		fs = middlewares.Cache(fileServer)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)

	mux.HandleFunc("GET  /signup", h.Signup)
	mux.HandleFunc("POST /signup", h.DoSignup)
	mux.HandleFunc("GET  /login", h.Login)
	mux.HandleFunc("POST /login", h.DoLogin)
	mux.HandleFunc("GET  /logout", h.Logout)

	mux.HandleFunc("GET  /clubs", h.Clubs)
	mux.HandleFunc("GET  /clubs/new", auth.RequireLogin(h.NewClub))
	mux.HandleFunc("POST /clubs/new", auth.RequireLogin(h.DoNewClub))
	mux.HandleFunc("POST /clubs/{name}/delete", auth.RequireLogin(h.DeleteClub))

	mux.HandleFunc("GET  /events/new", auth.RequireLogin(h.NewEvent))
	mux.HandleFunc("POST /events/new", auth.RequireLogin(h.DoNewEvent))
	mux.HandleFunc("POST /events/{event_id}/delete", auth.RequireLogin(h.DeleteEvent))
	mux.HandleFunc("POST /events/{event_id}/register", auth.RequireLogin(h.Register))
	mux.HandleFunc("POST /events/{event_id}/unregister", auth.RequireLogin(h.Unregister))
	mux.HandleFunc("GET  /events/{event_id}/qr", h.EventQR)

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	mux.HandleFunc("/", h.NotFound)

	return cleanPath(srv.Auth.Middleware(mux))
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", h.newPage(w, r)); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.String("error", err.Error()))
	}
}

func cleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
