package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	clienterrors "github.com/khushisingh18/Ai-blog-website/client/internal/errors"
	"github.com/khushisingh18/Ai-blog-website/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 64 << 10

type opKey struct{}

// WithOp tags ctx with the logical operation name so transports can label
// metrics and logs without parsing URLs.
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey{}, op)
}

// OpFrom returns the operation name stored by WithOp, or "unknown".
func OpFrom(ctx context.Context) string {
	if op, ok := ctx.Value(opKey{}).(string); ok && op != "" {
		return op
	}
	return "unknown"
}

// call describes one JSON round trip.
type call struct {
	op     string
	method string
	url    string
	in     any    // request body, nil for none
	out    any    // decode target, nil to discard
	schema string // optional shape check applied before decoding
}

// send performs c and decodes a 2xx response into c.out. Non-2xx responses
// become *errors.APIError; transport failures become network APIErrors.
func send(ctx context.Context, httpClient HTTPClient, c call) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var body io.Reader
	if c.in != nil {
		b, err := json.Marshal(c.in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.op, err)
		}
		body = bytes.NewReader(b)
	}
	httpReq, err := http.NewRequestWithContext(WithOp(ctx, c.op), c.method, c.url, body)
	if err != nil {
		return err
	}
	if c.in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	// Note: Authorization header will be added by transport layer
	return do(httpClient, httpReq, c)
}

// do executes an already built request; shared by JSON and multipart calls.
func do(httpClient HTTPClient, httpReq *http.Request, c call) error {
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return clienterrors.NewNetworkError(c.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return clienterrors.NewHTTPError(c.op, resp.StatusCode, b)
	}
	if c.out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return clienterrors.NewNetworkError(c.op, err)
	}
	if c.schema != "" {
		if err := types.ValidateShape(c.schema, raw); err != nil {
			return fmt.Errorf("%s: %w", c.op, err)
		}
	}
	if err := json.Unmarshal(raw, c.out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.op, err)
	}
	return nil
}
