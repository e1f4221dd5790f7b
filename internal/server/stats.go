package server

import (
	"sync/atomic"
	"time"
)

// Stats holds process-lifetime counters for the agent. Counters are
// incremented on every request and read by the status route; atomic access
// keeps them exact under concurrent requests. Stats are never persisted.
type Stats struct {
	start    time.Time
	requests atomic.Int64
	scripts  atomic.Int64
}

// NewStats creates a Stats anchored at the current time.
func NewStats() *Stats {
	return &Stats{start: time.Now()}
}

// IncRequests records one served request.
func (s *Stats) IncRequests() { s.requests.Add(1) }

// IncScripts records one executed script.
func (s *Stats) IncScripts() { s.scripts.Add(1) }

// Requests returns the total number of requests served.
func (s *Stats) Requests() int64 { return s.requests.Load() }

// Scripts returns the total number of scripts executed.
func (s *Stats) Scripts() int64 { return s.scripts.Load() }

// Uptime returns the elapsed time since the agent started.
func (s *Stats) Uptime() time.Duration { return time.Since(s.start) }
