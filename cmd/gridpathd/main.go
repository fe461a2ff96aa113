// Command gridpathd serves maze path search over HTTP.
//
//	gridpathd -addr :8080 -max-cells 250000
//	curl -d '{"maze":["S00","010","00E"],"movement":"eight"}' localhost:8080/v1/paths
//
// SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gridpath/server"
)

func main() {
	cfg := server.DefaultConfig()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "per-request read timeout")
	flag.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "per-request write timeout")
	flag.Int64Var(&cfg.MaxBodyBytes, "max-body", cfg.MaxBodyBytes, "maximum request body size in bytes")
	flag.IntVar(&cfg.MaxCells, "max-cells", cfg.MaxCells, "maximum maze size in cells (0 = unlimited)")
	jsonLogs := flag.Bool("json", false, "log as JSON")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if *debug {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if *jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, server.WithLogger(logger.With(slog.String("component", "server"))))
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
