package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUpstreamError(t *testing.T) {
	testCases := []struct {
		status int
		code   ErrCode
	}{
		{404, ErrCodeNotFound},
		{429, ErrCodeRateLimited},
		{500, ErrCodeUpstream},
		{403, ErrCodeUpstream},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			err := NewUpstreamError(tc.status, "https://api.github.com/users/x", "boom")
			assert.Equal(t, tc.code, err.Code)
			assert.Equal(t, tc.status, err.StatusCode)
			assert.Contains(t, err.Error(), fmt.Sprintf("HTTP %d for https://api.github.com/users/x", tc.status))
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load profile: %w", NewUpstreamError(404, "u", "Not Found"))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsRateLimited(wrapped))
	assert.Equal(t, 404, StatusCode(wrapped))
	assert.Equal(t, 0, StatusCode(fmt.Errorf("plain")))
}

func TestDecodeErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := NewDecodeError("u", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed response from u")
}
