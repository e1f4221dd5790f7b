// Package server implements the runlet HTTP dispatcher: it authorizes the
// caller by source IP, serves the built-in informational routes, and hands
// everything else to the path resolver and script runner, shaping every
// outcome into a small set of status+body responses.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"runlet/internal/authorize"
	"runlet/internal/route"
	"runlet/internal/runner"
	"runlet/internal/version"
)

// Server is the runlet agent: one HTTP listener dispatching requests to
// built-in routes or script executions.
type Server struct {
	// Addr is the address to listen on (e.g., ":8080").
	Addr string

	allowlist *authorize.Allowlist
	resolver  *route.Resolver
	runner    *runner.Runner
	stats     *Stats
	log       *zap.Logger

	server   *http.Server
	listener net.Listener
	mu       sync.Mutex
	running  bool
}

// New creates a Server listening on port, authorizing against allowlist and
// executing scripts resolved by resolver. All collaborators are required.
func New(port int, allowlist *authorize.Allowlist, resolver *route.Resolver, run *runner.Runner, log *zap.Logger) *Server {
	return &Server{
		Addr:      fmt.Sprintf(":%d", port),
		allowlist: allowlist,
		resolver:  resolver,
		runner:    run,
		stats:     NewStats(),
		log:       log,
	}
}

// Handler builds the HTTP handler tree. Middleware order matters: panic
// recovery wraps everything, observation wraps authorization, and
// authorization precedes all routing including the built-in routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer)
	r.Use(s.observe)
	r.Use(s.authorize)

	r.HandleFunc("/", s.handleStatus)
	r.HandleFunc("/status", s.handleStatus)
	r.HandleFunc("/health", s.handleHealth)
	r.HandleFunc("/list", s.handleList)
	r.Handle("/metrics", metricsHandler())
	r.HandleFunc("/*", s.handleScript)

	return r
}

// Start begins accepting connections.
// Returns an error if the server is already running or fails to listen.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("server already running")
	}

	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr, err)
	}

	s.listener = listener
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 30 * time.Second,
	}
	s.running = true

	go func() {
		_ = s.server.Serve(listener)
	}()

	s.log.Info("server started",
		zap.String("addr", listener.Addr().String()),
		zap.String("scripts_dir", s.resolver.Dir()),
		zap.Int("allow_rules", s.allowlist.Rules()),
	)
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	s.running = false
	return s.server.Shutdown(ctx)
}

// ListenAddr returns the actual address the server is listening on.
// This is useful when the server was started with port 0 (random port).
// Returns empty string if the server is not running.
func (s *Server) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// statusResponse is the JSON body served on / and /status.
type statusResponse struct {
	Service          string   `json:"service"`
	Version          string   `json:"version"`
	UptimeSeconds    int64    `json:"uptime_seconds"`
	Requests         int64    `json:"requests"`
	ScriptsRun       int64    `json:"scripts_run"`
	AvailableScripts []string `json:"available_scripts"`
	ScriptsDir       string   `json:"scripts_dir"`
}

// handleStatus serves the agent status object on / and /status.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	scripts, err := s.resolver.List()
	if err != nil {
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Execution failed: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Service:          "runlet",
		Version:          version.Version,
		UptimeSeconds:    int64(s.stats.Uptime().Seconds()),
		Requests:         s.stats.Requests(),
		ScriptsRun:       s.stats.Scripts(),
		AvailableScripts: scripts,
		ScriptsDir:       s.resolver.Dir(),
	})
}

// handleHealth serves a plain liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

// listResponse is the JSON body served on /list.
type listResponse struct {
	Scripts []string `json:"scripts"`
}

// handleList serves the sorted script names.
func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	scripts, err := s.resolver.List()
	if err != nil {
		writeText(w, http.StatusInternalServerError, fmt.Sprintf("Execution failed: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Scripts: scripts})
}

// handleScript resolves the request path to a script, runs it, and maps the
// result. The resolver sees the still-escaped path so that encoded bytes in
// the first segment cannot smuggle characters past name validation.
func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	sc, err := s.resolver.Resolve(r.URL.EscapedPath())
	if err != nil {
		respondResolveError(w, sc, err)
		return
	}

	res := s.runner.Run(sc.Path, sc.Arg)
	s.stats.IncScripts()
	scriptRunsTotal.WithLabelValues(string(res.Status)).Inc()
	scriptDuration.Observe(res.Duration.Seconds())

	s.log.Info("script executed",
		zap.String("script", sc.Name),
		zap.String("arg", sc.Arg),
		zap.String("outcome", string(res.Status)),
		zap.Duration("duration", res.Duration),
	)
	respondResult(w, res)
}

// clientIP extracts the caller's IP from the transport layer, stripping the
// port and any IPv6 brackets.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
