package authorize

import "testing"

func TestAllowlist_IsAllowed(t *testing.T) {
	tests := []struct {
		name     string
		rules    []string
		ip       string
		expected bool
	}{
		// Literal matches
		{
			name:     "literal match allowed",
			rules:    []string{"192.168.1.50"},
			ip:       "192.168.1.50",
			expected: true,
		},
		{
			name:     "literal mismatch denied",
			rules:    []string{"192.168.1.50"},
			ip:       "192.168.1.51",
			expected: false,
		},
		{
			name:     "ipv6 literal match allowed",
			rules:    []string{"fe80::1"},
			ip:       "fe80::1",
			expected: true,
		},

		// Wildcard rules
		{
			name:     "wildcard last segment allowed",
			rules:    []string{"192.168.1.*"},
			ip:       "192.168.1.7",
			expected: true,
		},
		{
			name:     "wildcard matches multi-digit segment",
			rules:    []string{"192.168.1.*"},
			ip:       "192.168.1.254",
			expected: true,
		},
		{
			name:     "wildcard middle segment allowed",
			rules:    []string{"10.*.0.1"},
			ip:       "10.42.0.1",
			expected: true,
		},
		{
			name:     "wildcard wrong literal segment denied",
			rules:    []string{"192.168.1.*"},
			ip:       "192.168.2.7",
			expected: false,
		},
		{
			name:     "wildcard segment count mismatch denied",
			rules:    []string{"192.168.*"},
			ip:       "192.168.1.7",
			expected: false,
		},

		// Loopback always allowed
		{
			name:     "ipv4 loopback with empty allow-list",
			rules:    nil,
			ip:       "127.0.0.1",
			expected: true,
		},
		{
			name:     "ipv6 loopback with empty allow-list",
			rules:    nil,
			ip:       "::1",
			expected: true,
		},
		{
			name:     "ipv4 loopback with unrelated rules",
			rules:    []string{"10.0.0.1"},
			ip:       "127.0.0.1",
			expected: true,
		},

		// Fail closed
		{
			name:     "empty allow-list denies non-loopback",
			rules:    nil,
			ip:       "192.168.1.1",
			expected: false,
		},
		{
			name:     "malformed ip denied",
			rules:    []string{"not-an-ip"},
			ip:       "not-an-ip",
			expected: false,
		},
		{
			name:     "hostname denied even with wildcard",
			rules:    []string{"evil.*.com.x"},
			ip:       "evil.example.com.x",
			expected: false,
		},
		{
			name:     "empty string denied",
			rules:    []string{"192.168.1.*"},
			ip:       "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAllowlist(tt.rules)
			if got := a.IsAllowed(tt.ip); got != tt.expected {
				t.Errorf("IsAllowed(%q) with rules %v: got %v, want %v",
					tt.ip, tt.rules, got, tt.expected)
			}
		})
	}
}

func TestMatchPattern_WildcardRequiresDigits(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		ip       string
		expected bool
	}{
		{"digits match", "192.168.1.*", "192.168.1.9", true},
		{"letters rejected", "192.168.1.*", "192.168.1.abc", false},
		{"empty segment rejected", "192.168.1.*", "192.168.1.", false},
		{"mixed rejected", "192.168.1.*", "192.168.1.1a", false},
		{"partial segment never matches", "192.168.1.2*", "192.168.1.25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchPattern(tt.pattern, tt.ip); got != tt.expected {
				t.Errorf("matchPattern(%q, %q): got %v, want %v",
					tt.pattern, tt.ip, got, tt.expected)
			}
		})
	}
}

func TestAllowlist_Rules(t *testing.T) {
	a := NewAllowlist([]string{"10.0.0.1", "192.168.1.*", ""})
	if got := a.Rules(); got != 2 {
		t.Errorf("Rules: got %d, want 2 (empty entries skipped)", got)
	}
}
