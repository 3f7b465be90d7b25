package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"
)

// retry schedule for transient provider errors: 3 attempts at 1s, 2s, 4s.
const (
	retryInitialInterval = 1 * time.Second
	retryMaxAttempts     = 3
)

// withRetry retries op on transient errors (rate limit, 5xx, timeout,
// connection reset). Permanent errors (auth, malformed request) surface
// immediately.
func withRetry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = 8 * time.Second

	attempt := 0
	wrapped := func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if attempt >= retryMaxAttempts || !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(b, ctx))
}

// isTransient classifies provider errors worth retrying.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"429", "500", "502", "503", "504",
		"rate limit", "resource exhausted", "overloaded",
		"timeout", "deadline exceeded",
		"econnreset", "connection reset", "network", "unavailable",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
