package retry

import (
	"errors"
	"net"
	"net/url"
	"syscall"
	"time"

	ai "github.com/omnigen-ai/omnigen"
)

// statusCoder is implemented by SDK errors that carry an HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// IsTransient determines if an error is transient and should be retried.
// Errors implementing [ai.CategorizedError] are trusted outright; anything
// else falls back to heuristic detection of rate limits (429), server
// errors (5xx), timeouts, connection resets, and DNS failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce ai.CategorizedError
	if errors.As(err, &ce) {
		return ce.Category() == ai.ErrorTransient
	}

	var sc statusCoder
	if errors.As(err, &sc) && isTransientStatusCode(sc.StatusCode()) {
		return true
	}

	return isTransientNetworkError(err)
}

func isTransientStatusCode(code int) bool {
	if code == 429 {
		return true
	}
	return code >= 500 && code < 600
}

func isTransientNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && (dnsErr.IsTemporary || dnsErr.IsTimeout) {
		return true
	}

	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED)
}

// retryAfterFromError extracts the server-suggested retry delay.
// Returns 0 when the error carries none.
func retryAfterFromError(err error) time.Duration {
	var ce ai.CategorizedError
	if errors.As(err, &ce) {
		return ce.RetryAfter()
	}
	return 0
}

// effectiveDelay returns the delay to use, honoring the server's
// Retry-After when it exceeds the configured backoff.
func effectiveDelay(configuredDelay time.Duration, err error) time.Duration {
	if serverDelay := retryAfterFromError(err); serverDelay > configuredDelay {
		return serverDelay
	}
	return configuredDelay
}
