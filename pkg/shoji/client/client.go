package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/google/uuid"
	"github.com/shojikit/shoji-client/pkg/shoji"
	"github.com/shojikit/shoji-client/pkg/shoji/errors"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	TraceAttributeResourceURL string = "resource-url"

	defaultUserAgent string = "shoji-client/0.1"
)

var tracer = otel.Tracer("shoji-client")

func Debug(enabled string) func(*shojiSession) {
	return func(s *shojiSession) {
		s.debug = (enabled == "true")
	}
}

func Token(token string) func(*shojiSession) {
	return func(s *shojiSession) {
		s.token = token
	}
}

func UserAgent(userAgent string) func(*shojiSession) {
	return func(s *shojiSession) {
		s.userAgent = userAgent
	}
}

// New returns a shoji.Session issuing real HTTP calls. The session
// holds no state about the documents it produces; every document keeps
// a reference back to it for further navigation.
func New(options ...func(*shojiSession)) shoji.Session {
	s := &shojiSession{
		userAgent: defaultUserAgent,
		debug:     false,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

type shojiSession struct {
	userAgent string
	token     string
	debug     bool
}

func (s *shojiSession) Get(ctx context.Context, resourceURL string, headers map[string][]string) (*shoji.Response, error) {
	var err error

	ctx, span := tracer.Start(ctx, "fetch-resource",
		trace.WithAttributes(attribute.String(TraceAttributeResourceURL, resourceURL)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := s.callAPI(ctx, http.MethodGet, resourceURL, nil, headers)
	return response, err
}

func (s *shojiSession) Post(ctx context.Context, resourceURL string, body []byte, headers map[string][]string) (*shoji.Response, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-resource",
		trace.WithAttributes(attribute.String(TraceAttributeResourceURL, resourceURL)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := s.callAPI(ctx, http.MethodPost, resourceURL, body, headers)
	return response, err
}

func (s *shojiSession) Patch(ctx context.Context, resourceURL string, body []byte, headers map[string][]string) (*shoji.Response, error) {
	var err error

	ctx, span := tracer.Start(ctx, "update-resource",
		trace.WithAttributes(attribute.String(TraceAttributeResourceURL, resourceURL)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := s.callAPI(ctx, http.MethodPatch, resourceURL, body, headers)
	return response, err
}

func (s *shojiSession) callAPI(ctx context.Context, method, resourceURL string, body []byte, headers map[string][]string) (*shoji.Response, error) {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, resourceURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	for header, headerValue := range headers {
		for _, val := range headerValue {
			req.Header.Add(header, val)
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if s.debug {
			reqbytes, _ := httputil.DumpRequest(req, false)
			respbytes, _ := httputil.DumpResponse(resp, false)

			log := logging.GetFromContext(ctx)
			log.Error("request failed", "request", string(reqbytes), "response", string(respbytes))
		}

		return nil, errors.NewErrorFromResponseStatus(resp.StatusCode, respBody)
	}

	payload := shoji.ParsePayload(s, respBody)

	return shoji.NewResponse(resp.StatusCode, resp.Header, respBody, payload), nil
}
