package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campushub/clubhub/server"
	"github.com/campushub/clubhub/server/web"
)

func main() {
	cfgPath := flag.String("config", "clubhub.toml", "path to the config file")
	flag.Parse()

	cfg, err := server.LoadConfig(*cfgPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("path", *cfgPath), slog.Any("err", err))
		os.Exit(1)
	}

	setupLogger(cfg.Log)
	slog.Info("Starting ClubHub", slog.String("config", cfg.String()))

	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", slog.Any("err", err))
		os.Exit(1)
	}
	srv.Start(web.Routes(srv))
	defer srv.Stop()

	slog.Info("Server started", slog.String("addr", cfg.Server.Addr))

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGTERM, syscall.SIGINT)
	<-s
}

func setupLogger(cfg server.LogConfig) {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == server.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
