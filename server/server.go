package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/campushub/clubhub/server/auth"
	"github.com/campushub/clubhub/server/database"
	"github.com/campushub/clubhub/server/hub"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

func New(cfg Config) (*Server, error) {
	var staticFS http.FileSystem
	var t func() *template.Template
	if cfg.Dev {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open static directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				ParseFS(root.FS(), "templates/*.gohtml"))
		}
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			ParseFS(templates, "templates/*.gohtml"),
		)

		t = func() *template.Template {
			return st
		}
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.SeedSampleData {
		if err = db.SeedSampleData(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	h := hub.New(db, hub.OwnerOrAdmin(cfg.Auth.Admins))

	migrated, err := h.Registry.MigrateEventIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to backfill event ids: %w", err)
	}
	if migrated > 0 {
		slog.Info("Backfilled event ids", slog.Int("events", migrated))
	}

	return &Server{
		Cfg:       cfg,
		DB:        db,
		Hub:       h,
		Auth:      auth.New(cfg.Auth, db),
		StaticFS:  staticFS,
		templates: t,
		server: &http.Server{
			Addr: cfg.Server.Addr,
		},
	}, nil
}

type Server struct {
	Cfg       Config
	DB        *database.Database
	Hub       *hub.Hub
	Auth      *auth.Auth
	StaticFS  http.FileSystem
	templates func() *template.Template
	server    *http.Server
}

func (s *Server) Templates() *template.Template {
	return s.templates()
}

func (s *Server) Start(handler http.Handler) {
	s.server.Handler = handler
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("Failed to close database", slog.Any("err", err))
	}
}
