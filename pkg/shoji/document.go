package shoji

import (
	"context"
	"net/http"

	"github.com/shojikit/shoji-client/pkg/shoji/errors"
)

// Document is the capability shared by the three shoji variants. A
// document is a JSON object bound to a session: attribute lookups are
// answered from its own members or, failing that, by following one of
// its navigation collections over the wire, and the mutating verbs are
// issued against its own URL.
type Document interface {
	Element() string
	Self() string
	Members() *Members
	Resolve(ctx context.Context, key string) (*Resolution, error)
	Post(ctx context.Context, body []byte, headers map[string][]string) (*Response, error)
	Patch(ctx context.Context, body []byte, headers map[string][]string) (*Response, error)
}

type ResolutionSource int

const (
	// ResolvedLocal means the value was found among the document's own
	// members and no transport call was made.
	ResolvedLocal ResolutionSource = iota
	// ResolvedRemote means the value is the parsed payload of a GET on
	// a navigation link.
	ResolvedRemote
)

// Resolution is the outcome of a successful attribute lookup.
type Resolution struct {
	Source ResolutionSource
	Value  any
}

type document struct {
	session Session
	members *Members

	// set once by the variant constructor
	element    string
	navigation []string
}

func (d *document) Element() string {
	return d.element
}

func (d *document) Members() *Members {
	return d.members
}

func (d *document) Self() string {
	if v, ok := d.members.Get("self"); ok {
		if u, ok := v.(string); ok {
			return u
		}
	}
	return ""
}

// Resolve looks up key on this document. A member of the document
// itself always wins. Otherwise the variant's navigation collections
// are checked in declaration order and the first collection containing
// key triggers a single GET of the linked resource, whose parsed
// payload becomes the result. Callers must treat Resolve as a possibly
// blocking operation, not an in memory read.
func (d *document) Resolve(ctx context.Context, key string) (*Resolution, error) {
	if v, ok := d.members.Get(key); ok {
		return &Resolution{Source: ResolvedLocal, Value: v}, nil
	}

	for _, collname := range d.navigation {
		coll, ok := d.members.Get(collname)
		if !ok {
			continue
		}

		linkURL, ok := lookupLink(coll, key)
		if !ok {
			continue
		}

		response, err := d.session.Get(ctx, linkURL, nil)
		if err != nil {
			return nil, err
		}

		return &Resolution{Source: ResolvedRemote, Value: response.Payload()}, nil
	}

	return nil, errors.NewAttributeNotFoundError(d.element, key)
}

func lookupLink(coll any, key string) (string, bool) {
	switch links := coll.(type) {
	case *Members:
		if v, ok := links.Get(key); ok {
			u, ok := v.(string)
			return u, ok
		}
	case map[string]string:
		u, ok := links[key]
		return u, ok
	}

	return "", false
}

func (d *document) Post(ctx context.Context, body []byte, headers map[string][]string) (*Response, error) {
	return d.session.Post(ctx, d.Self(), body, withDefaultContentType(headers))
}

func (d *document) Patch(ctx context.Context, body []byte, headers map[string][]string) (*Response, error) {
	return d.session.Patch(ctx, d.Self(), body, withDefaultContentType(headers))
}

// withDefaultContentType returns headers with Content-Type set to
// application/json unless the caller already provided one. The caller's
// map is never modified.
func withDefaultContentType(headers map[string][]string) map[string][]string {
	if http.Header(headers).Get("Content-Type") != "" {
		return headers
	}

	merged := http.Header{}
	for name, values := range headers {
		for _, v := range values {
			merged.Add(name, v)
		}
	}
	merged.Set("Content-Type", "application/json")

	return merged
}

// marshalDocument serializes a document as its element tag followed by
// its members in insertion order. The tag is a variant constant and is
// never stored among the members themselves.
func marshalDocument(d *document) ([]byte, error) {
	out := NewMembers()
	out.Set("element", d.element)

	for _, k := range d.members.Keys() {
		v, _ := d.members.Get(k)
		out.Set(k, v)
	}

	return out.MarshalJSON()
}
