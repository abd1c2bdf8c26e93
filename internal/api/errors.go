package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Fallback messages used when the backend gives no usable error text
const (
	MessageUnreachable = "Unable to reach the server"
	messageHTTPFormat  = "Request failed (HTTP %d)"
)

// Error is a failed API call. Status is 0 when no HTTP response was received.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the text to show for err: the backend-supplied message when
// err is an *Error, fallback otherwise
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// errorBody covers the payload shapes the backend uses for failures
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// validationItem is one entry of a request-validation detail list
type validationItem struct {
	Msg string `json:"msg"`
	Loc []any  `json:"loc"`
}

// parseErrorBody builds an *Error from a non-2xx response body
func parseErrorBody(status int, body []byte) *Error {
	e := &Error{Status: status, Message: fmt.Sprintf(messageHTTPFormat, status)}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return e
	}

	if len(eb.Detail) > 0 {
		var s string
		if json.Unmarshal(eb.Detail, &s) == nil && strings.TrimSpace(s) != "" {
			e.Message = s
			return e
		}
		var items []validationItem
		if json.Unmarshal(eb.Detail, &items) == nil && len(items) > 0 && items[0].Msg != "" {
			e.Message = items[0].Msg
			return e
		}
	}
	if eb.Error != "" {
		e.Message = eb.Error
	} else if eb.Message != "" {
		e.Message = eb.Message
	}
	return e
}
