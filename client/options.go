package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer and request-id wrappers are
// installed, so transport-related options (like debug logging) sit
// underneath them. WithHTTPClient replaces the underlying client and should
// therefore come first.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient uses hc instead of the default client. The client is copied
// so that wrapping its transport does not affect the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		cp := *hc
		c.http = &cp
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true. Dumps include the Authorization header; do
// not enable it where logs are shared.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); !already {
				c.http.Transport = &debugTransport{base: c.http.Transport}
			}
		}
		return nil
	}
}

// WithTokenSource makes every request carry "Authorization: Bearer <token>"
// whenever ts returns a non-empty token. ts is consulted per request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) error {
		c.tokens = ts
		return nil
	}
}

// WithMetrics records request counts and latencies into reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		if reg == nil {
			return fmt.Errorf("metrics registerer cannot be nil")
		}
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		c.metrics = m
		return nil
	}
}
