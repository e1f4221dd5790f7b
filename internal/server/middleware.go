package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"
)

// recoverer catches panics at the dispatcher boundary and maps them to the
// 500 outcome. No failure may propagate to the transport layer or leave a
// connection unanswered.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("handler panic",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				writeText(w, http.StatusInternalServerError, fmt.Sprintf("Execution failed: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// observe logs one entry per request and feeds the request counter metrics.
// The /metrics endpoint itself is excluded to avoid self-inflation.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		if r.URL.Path == "/metrics" {
			return
		}
		httpRequestsTotal.WithLabelValues(strconv.Itoa(ww.Status()), r.Method).Inc()
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("ip", clientIP(r)),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// authorize counts the request and rejects unauthorized callers before any
// routing happens, built-in routes included.
func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.stats.IncRequests()

		ip := clientIP(r)
		if !s.allowlist.IsAllowed(ip) {
			s.log.Warn("access denied", zap.String("ip", ip), zap.String("path", r.URL.Path))
			writeText(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}
