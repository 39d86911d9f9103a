package omnigen

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrEmptyInput(t *testing.T) {
	assert.Error(t, ErrEmptyInput)
	assert.Equal(t, "empty input", ErrEmptyInput.Error())
	assert.True(t, errors.Is(ErrEmptyInput, ErrEmptyInput))
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("transient", func(t *testing.T) {
		err := NewTransientError("request failed", 503, cause)

		assert.Equal(t, ErrorTransient, err.Category())
		assert.True(t, err.Retryable())
		assert.Equal(t, 503, err.StatusCode())
		assert.Zero(t, err.RetryAfter())
		assert.Equal(t, "request failed: connection reset", err.Error())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("transient with retry delay", func(t *testing.T) {
		err := NewTransientErrorWithRetry("rate limited", 429, 30*time.Second, nil)

		assert.True(t, err.Retryable())
		assert.Equal(t, 30*time.Second, err.RetryAfter())
		assert.Equal(t, "rate limited", err.Error())
	})

	t.Run("permanent", func(t *testing.T) {
		err := NewPermanentError("model removed", 410, nil)

		assert.Equal(t, ErrorPermanent, err.Category())
		assert.False(t, err.Retryable())
	})

	t.Run("user input", func(t *testing.T) {
		err := NewUserInputError("bad request", 400, nil)

		assert.Equal(t, ErrorUserInput, err.Category())
		assert.False(t, err.Retryable())
	})
}

func TestCategoryPredicates(t *testing.T) {
	transient := NewTransientError("flaky", 500, nil)
	permanent := NewPermanentError("gone", 410, nil)
	userInput := NewUserInputError("invalid", 400, nil)

	assert.True(t, IsTransient(transient))
	assert.False(t, IsTransient(permanent))

	assert.True(t, IsPermanent(permanent))
	assert.False(t, IsPermanent(userInput))

	assert.True(t, IsUserInput(userInput))
	assert.False(t, IsUserInput(transient))

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("calling provider: %w", transient)
		assert.True(t, IsTransient(wrapped))
	})

	t.Run("uncategorized errors match nothing", func(t *testing.T) {
		plain := errors.New("plain")
		assert.False(t, IsTransient(plain))
		assert.False(t, IsPermanent(plain))
		assert.False(t, IsUserInput(plain))
	})

	t.Run("nil unwraps cleanly", func(t *testing.T) {
		err := NewPermanentError("standalone", 0, nil)
		require.Nil(t, err.Unwrap())
	})
}
