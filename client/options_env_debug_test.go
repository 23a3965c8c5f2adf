package client

import (
	"context"
	"net/http"
	"testing"
)

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("INKWELL_DEBUG", "true")
	var sawDebug bool
	c, err := New("http://example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// bearer -> request id -> debug
	if bt, ok := c.http.Transport.(*bearerTransport); ok {
		if rt, ok := bt.base.(*requestIDTransport); ok {
			_, sawDebug = rt.base.(*debugTransport)
		}
	}
	if !sawDebug {
		t.Fatalf("expected debugTransport to be installed when INKWELL_DEBUG=true")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}
