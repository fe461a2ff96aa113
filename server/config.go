package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sentinel errors for request handling.
var (
	// ErrMazeTooLarge indicates a maze with more cells than Config.MaxCells.
	ErrMazeTooLarge = errors.New("server: maze exceeds the cell limit")
	// ErrBadRequest indicates a request body that is not valid JSON.
	ErrBadRequest = errors.New("server: malformed request body")
)

// Config holds the listener and request limits of a Server.
type Config struct {
	// Addr is the TCP address to listen on, e.g. ":8080".
	Addr string
	// ReadTimeout and WriteTimeout bound a single request.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64
	// MaxCells caps rows×cols of a submitted maze. 0 disables the limit.
	MaxCells int
}

// DefaultConfig returns a Config with defaults:
// Addr=":8080", 10s timeouts, 1 MiB bodies, 1,000,000 cells.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		MaxBodyBytes: 1 << 20,
		MaxCells:     1_000_000,
	}
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers the server's metrics on reg and serves reg on /metrics.
// By default every Server gets its own fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}
