// Package forward translates custom-scheme URLs into agent requests.
// A URL of the form scheme://script/arg is forwarded as a single
// best-effort GET to http://localhost:<port>/script/arg. There is no retry
// and no result is surfaced: the forwarder exists so OS-level URL handlers
// can fire a trigger and exit.
package forward

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds the wait for the agent's response. Deliberately a
// fixed deadline with no retry and no backoff.
const DefaultTimeout = 10 * time.Second

// Translate converts a custom-scheme URL into the agent URL it maps to.
// The URL's host becomes the first path segment (the script identifier) and
// its path is carried over verbatim, encoding preserved.
func Translate(raw string, port int) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse trigger URL: %w", err)
	}
	if u.Host == "" {
		return "", errors.New("trigger URL names no script")
	}
	return fmt.Sprintf("http://localhost:%d/%s%s", port, u.Host, u.EscapedPath()), nil
}

// Send issues one GET to the translated URL, waiting at most DefaultTimeout.
// The response body is discarded; only transport-level failure is reported
// so the caller can log it before exiting.
func Send(ctx context.Context, agentURL string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, agentURL, nil)
	if err != nil {
		return fmt.Errorf("build forward request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("forward request: %w", err)
	}
	_ = resp.Body.Close()
	return nil
}
