package optouthub

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	go_json "github.com/goccy/go-json"
)

// APIError is the generic error for any API failure status that does not
// map to a more specific type.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("optouthub api: %d %s", e.StatusCode, e.Message)
}

// AuthenticationError indicates a missing or invalid API key (401).
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "optouthub: authentication failed: " + e.Message
}

// ForbiddenError indicates the API key lacks access to the resource (403).
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return "optouthub: forbidden: " + e.Message
}

// NotFoundError indicates the requested resource does not exist (404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return "optouthub: not found: " + e.Message
}

// RateLimitError indicates the request was throttled (429). RetryAfter is
// zero when the response carried no Retry-After header.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("optouthub: rate limited, retry after %s: %s", e.RetryAfter, e.Message)
	}
	return "optouthub: rate limited: " + e.Message
}

// ValidationError indicates the request was rejected as malformed (400).
// Fields maps parameter names to their individual problems when the
// response provides them.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return "optouthub: validation failed: " + e.Message
}

func parseAPIError(resp *http.Response) error {
	msg := resp.Status

	var errResp struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Fields  map[string]string `json:"fields"`
	}
	if body, err := io.ReadAll(resp.Body); err == nil && len(body) > 0 {
		if err := go_json.Unmarshal(body, &errResp); err != nil {
			msg = string(body)
		} else if errResp.Message != "" {
			msg = errResp.Message
		} else if errResp.Error != "" {
			msg = errResp.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: msg}
	case http.StatusForbidden:
		return &ForbiddenError{Message: msg}
	case http.StatusNotFound:
		return &NotFoundError{Message: msg}
	case http.StatusTooManyRequests:
		return &RateLimitError{Message: msg, RetryAfter: parseRetryAfter(resp.Header)}
	case http.StatusBadRequest:
		return &ValidationError{Message: msg, Fields: errResp.Fields}
	default:
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms.
func parseRetryAfter(h http.Header) time.Duration {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
