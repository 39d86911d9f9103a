package compat

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	ai "github.com/omnigen-ai/omnigen"
)

// wrapStatusError categorizes a non-2xx response, extracting the server's
// error message and any Retry-After header so callers can make retry
// decisions.
func wrapStatusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	msg := fmt.Sprintf("compat: request failed with status %d", resp.StatusCode)
	var eresp errorResponse
	if err := json.Unmarshal(body, &eresp); err == nil && eresp.Error.Message != "" {
		msg = fmt.Sprintf("compat: %s (status %d)", eresp.Error.Message, resp.StatusCode)
	}

	if retryAfter := parseRetryAfter(resp); retryAfter > 0 {
		return ai.NewTransientErrorWithRetry(msg, resp.StatusCode, retryAfter, nil)
	}

	switch categorizeStatusCode(resp.StatusCode) {
	case ai.ErrorTransient:
		return ai.NewTransientError(msg, resp.StatusCode, nil)
	case ai.ErrorUserInput:
		return ai.NewUserInputError(msg, resp.StatusCode, nil)
	default:
		return ai.NewPermanentError(msg, resp.StatusCode, nil)
	}
}

func categorizeStatusCode(code int) ai.ErrorCategory {
	switch {
	case code == http.StatusTooManyRequests:
		return ai.ErrorTransient
	case code >= 500:
		return ai.ErrorTransient
	case code == http.StatusBadRequest,
		code == http.StatusNotFound,
		code == http.StatusUnprocessableEntity:
		return ai.ErrorUserInput
	default:
		return ai.ErrorPermanent
	}
}

func parseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
