// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET /healthz                                   liveness and build info
//	GET /v1/kinds                                  the catalog
//	GET /v1/layout?kind=OR&in=05&out=3[&paths=1]   one layout as JSON
//	GET /v1/layout?...&format=svg|png|dot          one layout as an image
//	GET /v1/table/{kind}                           a kind's lookup table
//
// Failures are JSON objects {"code": ..., "message": ...}. Malformed
// requests answer 400; well-formed requests without a layout answer 422.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/observability"
	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// RequestIDHeader carries the request ID on every response.
const RequestIDHeader = "X-Request-ID"

// Lister lists the kinds of a catalog.
type Lister interface {
	Kinds() []supertile.Kind
}

// Options configures a [Server].
type Options struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	HandlerTimeout    time.Duration
}

// Server is the HTTP API.
type Server struct {
	runner *pipeline.Runner
	kinds  Lister
	logger *log.Logger
	opts   Options
	server *http.Server
	errc   chan error
}

// New creates a server. Zero timeouts default to 5s for headers and 30s
// per request.
func New(runner *pipeline.Runner, kinds Lister, logger *log.Logger, opts Options) *Server {
	if opts.ReadHeaderTimeout <= 0 {
		opts.ReadHeaderTimeout = 5 * time.Second
	}
	if opts.HandlerTimeout <= 0 {
		opts.HandlerTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, kinds: kinds, logger: logger, opts: opts}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.HandlerTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/kinds", s.handleKinds)
		r.Get("/layout", s.handleLayout)
		r.Get("/table/{kind}", s.handleTable)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, r, errors.New(errors.ErrCodeNotFound, "no route %s", r.URL.Path))
	})
	return r
}

// Start binds the listen address and serves in the background. Bind
// failures are returned; later serve failures are reported by [Server.Run].
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", s.opts.Addr)
	}

	s.server = &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.opts.ReadHeaderTimeout,
	}
	s.errc = make(chan error, 1)

	s.logger.Info("starting server", "addr", ln.Addr().String())

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", "err", err)
			s.errc <- err
		}
		close(s.errc)
	}()
	return nil
}

// Stop shuts the server down, waiting up to five seconds for open requests.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("stopping server")
	return s.server.Shutdown(ctx)
}

// Run serves until ctx is done or the server fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return s.Stop()
	case err, ok := <-s.errc:
		if ok {
			return err
		}
		return nil
	}
}

type ctxKey struct{}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// RequestID returns the ID assigned to the request in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), elapsed)
		s.logger.Debug("request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"route", route,
			"status", ww.Status(),
			"duration", elapsed)
	})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNoValidOrientation, errors.ErrCodeImpossibleRouting, errors.ErrCodeUnsupportedWire:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	s.respondJSON(w, status, ErrorResponse{
		Code:      string(code),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}
