package models

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorCode classifies errors for logs. Codes never reach the response body.
type ErrorCode string

const (
	ErrorCodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// HTTPStatusCode returns the HTTP status code for each error type.
// Every upstream failure collapses to 500, whatever its cause.
func (e ErrorCode) HTTPStatusCode() int {
	switch e {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeUpstreamFailure, ErrorCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// AppError represents an application error with context
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Context    map[string]interface{}
	StatusCode int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	return NewAppErrorWithCause(code, message, nil)
}

// NewAppErrorWithCause creates a new application error with underlying cause
func NewAppErrorWithCause(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Cause:      cause,
		StatusCode: code.HTTPStatusCode(),
		Context:    make(map[string]interface{}),
	}
}

// NewUpstreamError wraps a failed upstream call behind a public message
func NewUpstreamError(message string, cause error) *AppError {
	return NewAppErrorWithCause(ErrorCodeUpstreamFailure, message, cause)
}

// HandleError logs err with its cause and writes the public message only
func HandleError(c *gin.Context, err error, log *zap.Logger) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewAppErrorWithCause(ErrorCodeInternalError, MessageInternal, err)
	}

	appErr.WithContext("method", c.Request.Method).
		WithContext("path", c.Request.URL.Path).
		WithContext("client_ip", c.ClientIP())

	if log != nil {
		fields := []zap.Field{
			zap.String("error_code", string(appErr.Code)),
			zap.String("error_message", appErr.Message),
			zap.Any("error_context", appErr.Context),
		}
		if appErr.Cause != nil {
			fields = append(fields, zap.Error(appErr.Cause))
		}

		if appErr.StatusCode >= http.StatusInternalServerError {
			log.Error("Application error", fields...)
		} else {
			log.Warn("Client error", fields...)
		}
	}

	c.AbortWithStatusJSON(appErr.StatusCode, ErrorResponse{Error: appErr.Message})
}
