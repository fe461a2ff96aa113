package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/movement"
	"github.com/katalvlaran/gridpath/render"
)

// PathRequest is the body of POST /v1/paths.
type PathRequest struct {
	// Maze rows in the S/E/0/1 text format.
	Maze []string `json:"maze"`
	// Movement is "four" (default) or "eight"; see movement.ByName.
	Movement string `json:"movement,omitempty"`
	// Render asks for the annotated grid in the response.
	Render bool `json:"render,omitempty"`
}

// PathResponse is the result of POST /v1/paths. A maze without a path is
// still a 200 response with Found=false.
type PathResponse struct {
	Found     bool     `json:"found"`
	Path      [][2]int `json:"path,omitempty"`
	Cost      float64  `json:"cost"`
	Steps     int      `json:"steps"`
	Diagonals int      `json:"diagonals"`
	Expanded  int      `json:"expanded"`
	Grid      []string `json:"grid,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "server.FindPath")
	defer span.End()

	var req PathRequest
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.fail(w, r, span, "", fmt.Errorf("%w: %w", ErrBadRequest, err))
		return
	}
	if req.Movement == "" {
		req.Movement = movement.FourWay{}.Name()
	}
	span.SetAttributes(attribute.String("movement", req.Movement))

	mv, err := movement.ByName(req.Movement)
	if err != nil {
		s.fail(w, r, span, "", err)
		return
	}
	m, err := maze.ParseLines(req.Maze)
	if err != nil {
		s.fail(w, r, span, mv.Name(), err)
		return
	}
	if cells := m.Grid.Rows() * m.Grid.Cols(); s.cfg.MaxCells > 0 && cells > s.cfg.MaxCells {
		s.fail(w, r, span, mv.Name(), fmt.Errorf("%w: %d > %d", ErrMazeTooLarge, cells, s.cfg.MaxCells))
		return
	}

	began := time.Now()
	res := astar.Find(m.Grid, m.Start, m.End, mv)
	elapsed := time.Since(began)

	result := "none"
	if res.Found {
		result = "found"
	}
	s.metrics.searches.WithLabelValues(mv.Name(), result).Inc()
	s.metrics.duration.WithLabelValues(mv.Name()).Observe(elapsed.Seconds())
	s.metrics.expanded.WithLabelValues(mv.Name()).Observe(float64(res.Expanded))
	span.SetAttributes(
		attribute.Bool("found", res.Found),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("rows", m.Grid.Rows()),
		attribute.Int("cols", m.Grid.Cols()),
	)
	s.logger.DebugContext(ctx, "search done",
		slog.String("movement", mv.Name()),
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", elapsed),
	)

	resp := PathResponse{
		Found:     res.Found,
		Cost:      res.Cost,
		Steps:     res.Path.Steps(),
		Diagonals: res.Path.Diagonals(),
		Expanded:  res.Expanded,
	}
	if res.Found {
		resp.Path = res.Path.Pairs()
	}
	if req.Render {
		resp.Grid = render.Lines(m.Grid, m.Start, m.End, res.Path)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// fail records err on the span and metrics and answers with a JSON error.
// Client mistakes map to 400, oversized mazes and bodies to 413.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, span trace.Span, mv string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if mv == "" {
		mv = "unknown"
	}
	s.metrics.searches.WithLabelValues(mv, "error").Inc()

	status := http.StatusBadRequest
	var tooBig *http.MaxBytesError
	if errors.Is(err, ErrMazeTooLarge) || errors.As(err, &tooBig) {
		status = http.StatusRequestEntityTooLarge
	}
	s.logger.InfoContext(r.Context(), "rejected request",
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", slog.String("error", err.Error()))
	}
}
