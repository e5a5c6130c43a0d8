package errors

import (
	"errors"
	"fmt"
)

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeNotFound    ErrCode = "NOT_FOUND"
	ErrCodeRateLimited ErrCode = "RATE_LIMITED"
	ErrCodeUpstream    ErrCode = "UPSTREAM"
	ErrCodeDecode      ErrCode = "DECODE"
	ErrCodeBadRequest  ErrCode = "BAD_REQUEST"
	ErrCodeInternal    ErrCode = "INTERNAL_ERROR"
)

// AppError represents an application error. StatusCode and URL are set
// when the error came from an upstream HTTP response.
type AppError struct {
	Code       ErrCode
	Message    string
	StatusCode int
	URL        string
	Err        error
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: HTTP %d for %s: %s", e.Code, e.StatusCode, e.URL, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an error for a non-2xx upstream response.
// 404 and 429 get their own codes.
func NewUpstreamError(statusCode int, url, body string) *AppError {
	code := ErrCodeUpstream
	switch statusCode {
	case 404:
		code = ErrCodeNotFound
	case 429:
		code = ErrCodeRateLimited
	}
	return &AppError{
		Code:       code,
		Message:    body,
		StatusCode: statusCode,
		URL:        url,
	}
}

// NewRateLimitedError creates a new rate limited error
func NewRateLimitedError(statusCode int, url, message string) *AppError {
	return &AppError{
		Code:       ErrCodeRateLimited,
		Message:    message,
		StatusCode: statusCode,
		URL:        url,
	}
}

// NewDecodeError creates an error for a payload that could not be parsed
func NewDecodeError(url string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("malformed response from %s", url),
		URL:     url,
		Err:     err,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsRateLimited checks if the error is a rate limited error
func IsRateLimited(err error) bool {
	return hasCode(err, ErrCodeRateLimited)
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}

func hasCode(err error, code ErrCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
