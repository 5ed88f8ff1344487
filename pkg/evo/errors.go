package evo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error returned by an Evo service.
type APIError struct {
	Status int    `json:"status" yaml:"status"`
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Detail, e.Status)
}

// ResponseError represents the error response body from an Evo service.
type ResponseError struct {
	Errors []APIError `json:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return "unknown error"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Common static errors that can be wrapped with context.
var (
	ErrClientIDRequired    = errors.New("OAuth client ID is required")
	ErrHubURLRequired      = errors.New("hub URL is required")
	ErrOrgIDRequired       = errors.New("organization ID is required")
	ErrWorkspaceIDRequired = errors.New("workspace ID is required")
	ErrExhausted           = errors.New("pager exhausted")
	ErrNilPage             = errors.New("fetch returned a nil page")
)

// ParseResponseError decodes an error response body. When the body is not a
// structured error document, a synthetic APIError carrying the HTTP status is
// returned instead so callers always see the status code.
func ParseResponseError(status int, body []byte) *ResponseError {
	respErr := &ResponseError{}
	if err := json.Unmarshal(body, respErr); err == nil && len(respErr.Errors) > 0 {
		for i := range respErr.Errors {
			if respErr.Errors[i].Status == 0 {
				respErr.Errors[i].Status = status
			}
		}

		return respErr
	}

	return &ResponseError{
		Errors: []APIError{
			{
				Status: status,
				Title:  http.StatusText(status),
				Detail: string(body),
			},
		},
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		if first := respErr.FirstError(); first != nil {
			return first.Status == status
		}
	}

	return false
}
