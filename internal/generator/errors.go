package generator

import (
	"fmt"
	"net/http"
	"strings"
)

// ValidationError is input rejected before any provider call.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// MsgEmptyTopic asks for a topic.
const MsgEmptyTopic = "Please enter a topic for your article!"

// EngineError is a failed call to a generative-text provider.
type EngineError struct {
	Provider   string
	StatusCode int // 0 when unknown
	Message    string
	Err        error
}

func (e *EngineError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *EngineError) Unwrap() error { return e.Err }

// Kind buckets a provider failure for user guidance.
type Kind int

const (
	KindOther Kind = iota
	KindRateLimit
	KindMissingKey
)

// Classify inspects a status code and message the way the hints need.
func Classify(status int, msg string) Kind {
	lower := strings.ToLower(msg)
	switch {
	case status == http.StatusTooManyRequests || strings.Contains(lower, "rate limit") || strings.Contains(msg, "429"):
		return KindRateLimit
	case status == http.StatusUnauthorized || status == http.StatusForbidden || strings.Contains(lower, "api key"):
		return KindMissingKey
	}
	return KindOther
}

// Hint returns guidance text for the user.
func (e *EngineError) Hint() string {
	switch Classify(e.StatusCode, e.Message) {
	case KindRateLimit:
		return "Article generation is temporarily unavailable due to API rate limit. Please wait 1-2 minutes and try again."
	case KindMissingKey:
		return "AI generation is not available. The API key may be invalid or missing."
	}
	return fmt.Sprintf("Generation failed: %s\n\nPlease try again in a moment.", e.Message)
}

// statusFromText recovers an HTTP status from SDK error text.
func statusFromText(s string) int {
	for _, code := range []int{
		http.StatusTooManyRequests,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusBadRequest,
		http.StatusNotFound,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	} {
		if strings.Contains(s, fmt.Sprint(code)) {
			return code
		}
	}
	return 0
}
