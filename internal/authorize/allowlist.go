// Package authorize implements source-IP authorization for the runlet agent.
// Callers are checked against a configured allow-list of IP literals and
// dot-segment wildcard patterns. Loopback callers are always permitted.
package authorize

import (
	"net"
	"strings"
)

// Allowlist enforces IP-based access control for the agent.
// It supports exact IP matching and wildcard patterns where a full
// dot-delimited segment is replaced by "*" (e.g. "192.168.1.*"). A wildcard
// segment matches any sequence of digits, never a partial segment.
// The allow-list is immutable after construction and safe for concurrent use.
type Allowlist struct {
	literals map[string]struct{}
	patterns []string // rules containing at least one "*" segment
}

// NewAllowlist creates an Allowlist from a slice of rules. Each rule is
// either an IP literal or a wildcard pattern. Empty rules are ignored.
func NewAllowlist(rules []string) *Allowlist {
	a := &Allowlist{
		literals: make(map[string]struct{}, len(rules)),
		patterns: make([]string, 0),
	}
	for _, r := range rules {
		if r == "" {
			continue
		}
		if strings.Contains(r, "*") {
			a.patterns = append(a.patterns, r)
		} else {
			a.literals[r] = struct{}{}
		}
	}
	return a
}

// IsAllowed reports whether the given IP may trigger execution.
// Loopback (127.0.0.1 and ::1) is always allowed, independent of
// configuration. Otherwise the IP must parse and either equal a configured
// literal or match a wildcard pattern. Anything else fails closed.
func (a *Allowlist) IsAllowed(ip string) bool {
	if ip == "127.0.0.1" || ip == "::1" {
		return true
	}
	if net.ParseIP(ip) == nil {
		return false
	}
	if _, ok := a.literals[ip]; ok {
		return true
	}
	for _, p := range a.patterns {
		if matchPattern(p, ip) {
			return true
		}
	}
	return false
}

// Rules returns the number of configured rules. Useful for startup logging.
func (a *Allowlist) Rules() int {
	return len(a.literals) + len(a.patterns)
}

// matchPattern checks an IP against a wildcard pattern. Both are split on
// ".", segment counts must be equal, and every segment must match literally
// except pattern segments of "*", which match any non-empty digit sequence.
func matchPattern(pattern, ip string) bool {
	ps := strings.Split(pattern, ".")
	is := strings.Split(ip, ".")
	if len(ps) != len(is) {
		return false
	}
	for i, seg := range ps {
		if seg == "*" {
			if !isDigits(is[i]) {
				return false
			}
			continue
		}
		if seg != is[i] {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
