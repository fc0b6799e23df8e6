package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusByKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidation("x").HTTPStatus())
	assert.Equal(t, http.StatusConflict, NewConflict("x").HTTPStatus())
	assert.Equal(t, http.StatusNotFound, NewNotFound("x").HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, NewTransaction(errors.New("x")).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, NewInternal(errors.New("x")).HTTPStatus())
}

func TestRetryable(t *testing.T) {
	assert.True(t, NewTransaction(errors.New("deadlock")).Retryable())
	assert.False(t, NewValidation("bad input").Retryable())
	assert.False(t, NewConflict("dup").Retryable())
}

func TestAs_UnwrapsThroughWrapping(t *testing.T) {
	inner := NewNotFound("room 101")
	wrapped := fmt.Errorf("settle payment: %w", inner)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(errors.New("boom"))
	assert.False(t, ok)
	assert.False(t, IsValidation(errors.New("boom")))
}

func TestErrorIncludesCause(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := NewTransaction(cause)
	assert.Contains(t, err.Error(), "transaction aborted")
	assert.Contains(t, err.Error(), "bad connection")
	assert.Equal(t, cause, errors.Unwrap(err))
}
