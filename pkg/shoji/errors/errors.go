package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var ErrAttributeNotFound = fmt.Errorf("no such attribute")
var ErrBadRequest = fmt.Errorf("bad request")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrForbidden = fmt.Errorf("forbidden")
var ErrInternal = fmt.Errorf("internal error")
var ErrKeyType = fmt.Errorf("unusable index key")
var ErrNotFound = fmt.Errorf("not found")
var ErrParse = fmt.Errorf("response could not be parsed")
var ErrRequest = fmt.Errorf("request error")

type shojiError struct {
	msg    string
	target error
}

func (e shojiError) Error() string        { return e.msg }
func (e shojiError) Is(target error) bool { return target == e.target }

func NewAttributeNotFoundError(element, key string) error {
	return &shojiError{
		msg:    fmt.Sprintf("%s has no attribute %s", element, key),
		target: ErrAttributeNotFound,
	}
}

func NewBadResponseError(msg string) error {
	return &shojiError{
		msg:    msg,
		target: ErrBadResponse,
	}
}

func NewKeyTypeError(attr string, value any) error {
	return &shojiError{
		msg:    fmt.Sprintf("value of attribute %s is of type %T and can not be used as an index key", attr, value),
		target: ErrKeyType,
	}
}

func NewParseError(msg string) error {
	return &shojiError{
		msg:    msg,
		target: ErrParse,
	}
}

// NewErrorFromResponseStatus maps an error status code from the server
// to one of the sentinel kinds, picking up a message body when the
// server provided one.
func NewErrorFromResponseStatus(code int, body []byte) error {
	report := &struct {
		Message     string `json:"message"`
		Description string `json:"description"`
	}{}

	detail := ""
	if err := json.Unmarshal(body, report); err == nil {
		detail = report.Message
		if detail == "" {
			detail = report.Description
		}
	}

	msg := fmt.Sprintf("server returned status code %d", code)
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}

	target := ErrInternal

	switch {
	case code == http.StatusNotFound:
		target = ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		target = ErrForbidden
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		target = ErrBadRequest
	}

	return &shojiError{msg: msg, target: target}
}
