package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeHTTPStatus(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{NewInvalidRequest("bad", CodeContentRequired), http.StatusBadRequest},
		{NewAuthenticationError("no", CodeInvalidToken), http.StatusUnauthorized},
		{NewNotFoundError("Post"), http.StatusNotFound},
		{NewConflictError("dup", CodeDuplicateWord), http.StatusConflict},
		{NewRateLimitExceeded("slow down"), http.StatusTooManyRequests},
		{NewInternalError("boom"), http.StatusInternalServerError},
		{NewDatabaseError(stderrors.New("conn reset")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.HTTPStatus, tt.err.Error())
	}
}

func TestToResponseMasksInternalDetail(t *testing.T) {
	err := NewDatabaseError(stderrors.New("pq: connection refused at 10.0.0.5"))

	resp := err.ToResponse()
	assert.Equal(t, "Internal server error", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "10.0.0.5")

	// 非内部错误原样返回文案
	resp = NewNotFoundError("Post").ToResponse()
	assert.Equal(t, "Post not found", resp.Error.Message)
}

func TestIsAndIsCode(t *testing.T) {
	err := NewConflictError("dup", CodeDuplicateWord)

	assert.True(t, Is(err, ErrorTypeConflict))
	assert.False(t, Is(err, ErrorTypeNotFound))
	assert.True(t, IsCode(err, CodeDuplicateWord))

	// 包装后仍可识别
	wrapped := fmt.Errorf("create filter: %w", err)
	assert.True(t, Is(wrapped, ErrorTypeConflict))
	assert.True(t, IsCode(wrapped, CodeDuplicateWord))

	assert.False(t, Is(stderrors.New("plain"), ErrorTypeConflict))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := NewInternalError("wrapped").WithError(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "root cause")
}
