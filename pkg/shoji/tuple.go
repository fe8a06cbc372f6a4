package shoji

import (
	"context"

	"github.com/shojikit/shoji-client/pkg/shoji/errors"
)

// Tuple is an ordered bag of attributes describing a single resource.
// Catalogs hold one per index entry and entities hold one as their
// body. The URL of the described resource is kept next to the
// attributes, never among them, and does not change after construction.
type Tuple struct {
	session   Session
	entityURL string
	members   *Members
}

func NewTuple(session Session, entityURL string, members *Members) *Tuple {
	if members == nil {
		members = NewMembers()
	}

	return &Tuple{
		session:   session,
		entityURL: entityURL,
		members:   members,
	}
}

func (t *Tuple) EntityURL() string {
	return t.entityURL
}

func (t *Tuple) Members() *Members {
	return t.members
}

// Get returns the attribute stored under key. The second return value
// distinguishes an absent attribute from one holding null.
func (t *Tuple) Get(key string) (any, bool) {
	return t.members.Get(key)
}

func (t *Tuple) Set(key string, value any) {
	t.members.Set(key, value)
}

// Copy returns a shallow copy of the tuple. The copy owns its own
// attribute container, so adding or removing attributes on one side is
// not visible on the other. Nested values are shared.
func (t *Tuple) Copy() *Tuple {
	return &Tuple{
		session:   t.session,
		entityURL: t.entityURL,
		members:   t.members.Copy(),
	}
}

// Fetch requests the full representation of the resource this tuple
// describes and returns its parsed payload. A response body that could
// not be parsed into a document is reported as errors.ErrParse.
func (t *Tuple) Fetch(ctx context.Context, headers map[string][]string) (any, error) {
	response, err := t.session.Get(ctx, t.entityURL, headers)
	if err != nil {
		return nil, err
	}

	payload := response.Payload()
	if payload == nil {
		return nil, errors.NewParseError("response from " + t.entityURL + " could not be parsed")
	}

	return payload, nil
}

func (t *Tuple) MarshalJSON() ([]byte, error) {
	return t.members.MarshalJSON()
}
