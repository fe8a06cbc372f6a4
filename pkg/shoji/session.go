package shoji

import (
	"context"
	"net/http"
)

//go:generate moq -rm -out ../test/session_mock.go -pkg test . Session

// Session is the transport every document and tuple holds a non owning
// reference to. Implementations issue the actual HTTP calls; the object
// model only decides when a call is needed. All three verbs block until
// a response is available.
//
// A transport level failure (unreachable host, error status) is
// returned as an error and passed through to the caller untranslated.
// A successful exchange always yields a Response, even when its body
// could not be parsed into a document.
type Session interface {
	Get(ctx context.Context, url string, headers map[string][]string) (*Response, error)
	Post(ctx context.Context, url string, body []byte, headers map[string][]string) (*Response, error)
	Patch(ctx context.Context, url string, body []byte, headers map[string][]string) (*Response, error)
}

// Response is the outcome of one transport call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	payload any
}

func NewResponse(statusCode int, header http.Header, body []byte, payload any) *Response {
	if header == nil {
		header = http.Header{}
	}

	return &Response{
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
		payload:    payload,
	}
}

// Payload returns the parsed document shaped value carried by the
// response, or nil if the body could not be parsed.
func (r *Response) Payload() any {
	return r.payload
}

// Location returns the Location header of the response. Lookup is case
// insensitive.
func (r *Response) Location() string {
	return r.Header.Get("Location")
}
