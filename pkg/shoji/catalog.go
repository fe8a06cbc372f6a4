package shoji

import (
	"context"
	"encoding/json"

	"github.com/shojikit/shoji-client/pkg/shoji/errors"
)

var catalogNavigation = []string{"catalogs", "views", "urls"}

// Index maps resource URLs to the tuples describing them. Iteration
// order is not specified.
type Index map[string]*Tuple

// Catalog is a document representing a collection of resources. Its
// index holds one tuple per member resource, so the members can be
// inspected, regrouped and fetched individually without retrieving the
// whole collection up front.
type Catalog struct {
	document
	index Index
}

// NewCatalog builds a catalog from raw document members, wrapping every
// index entry in a tuple bound to that entry's URL and the shared
// session.
func NewCatalog(session Session, members *Members) *Catalog {
	if members == nil {
		members = NewMembers()
	}
	members.Delete("element")

	index := Index{}

	if raw, ok := members.Get("index"); ok {
		if entries, ok := raw.(*Members); ok {
			for _, entityURL := range entries.Keys() {
				attrs, _ := entries.Get(entityURL)

				tupleMembers, ok := attrs.(*Members)
				if !ok {
					tupleMembers = NewMembers()
				}

				index[entityURL] = NewTuple(session, entityURL, tupleMembers)
			}
		}
		members.Set("index", index)
	}

	return &Catalog{
		document: document{
			session:    session,
			members:    members,
			element:    ElementCatalog,
			navigation: catalogNavigation,
		},
		index: index,
	}
}

func (c *Catalog) Index() Index {
	return c.index
}

// By regroups the index by the value of attr instead of by URL. Tuples
// lacking attr are skipped. When two tuples share a value, exactly one
// of them survives and which one is not specified. The attribute is not
// removed from the tuples, it only becomes the new access key.
func (c *Catalog) By(attr string) (map[any]*Tuple, error) {
	out := map[any]*Tuple{}

	for _, tuple := range c.index {
		value, ok := tuple.Get(attr)
		if !ok {
			continue
		}

		switch value.(type) {
		case *Members, []any, map[string]any:
			return nil, errors.NewKeyTypeError(attr, value)
		}

		out[value] = tuple
	}

	return out, nil
}

type createSettings struct {
	entity  *Entity
	refresh *bool
}

type CreateOption func(*createSettings)

// WithEntity supplies the entity to be posted. Without it an empty stub
// entity is posted instead.
func WithEntity(e *Entity) CreateOption {
	return func(s *createSettings) {
		s.entity = e
	}
}

// WithRefresh overrides the default refresh behaviour: when true the
// newly created resource is fetched back and returned, when false the
// posted entity is returned with its self URL filled in. The default is
// to refresh only when no entity was supplied.
func WithRefresh(refresh bool) CreateOption {
	return func(s *createSettings) {
		s.refresh = &refresh
	}
}

// Create POSTs an entity to this catalog to create a new resource and
// returns an entity whose self URL is the Location reported by the
// server. Callers that posted a minimal stub get the server's canonical
// representation back (one extra GET); callers that already know the
// full shape of what they posted can skip that round trip with
// WithRefresh(false).
func (c *Catalog) Create(ctx context.Context, opts ...CreateOption) (*Entity, error) {
	settings := createSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	refresh := settings.entity == nil
	if settings.refresh != nil {
		refresh = *settings.refresh
	}

	entity := settings.entity
	if entity == nil {
		entity = NewEntity(c.session)
	}

	body, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	response, err := c.Post(ctx, body, nil)
	if err != nil {
		return nil, err
	}

	newURL := response.Location()
	if newURL == "" {
		return nil, errors.NewBadResponseError("create response carried no Location header")
	}

	if refresh {
		fetched, err := c.session.Get(ctx, newURL, nil)
		if err != nil {
			return nil, err
		}

		created, ok := fetched.Payload().(*Entity)
		if !ok {
			return nil, errors.NewParseError("resource at " + newURL + " could not be parsed as an entity")
		}

		return created, nil
	}

	entity.SetSelf(newURL)
	return entity, nil
}

// Add inserts one member into this catalog, or updates its catalog
// attributes, by PATCHing a single entry index fragment. The full
// entity is never re-posted. The parsed payload of the PATCH response
// is returned.
func (c *Catalog) Add(ctx context.Context, entityURL string, attrs map[string]any) (any, error) {
	if attrs == nil {
		attrs = map[string]any{}
	}

	body, err := json.Marshal(map[string]any{entityURL: attrs})
	if err != nil {
		return nil, err
	}

	response, err := c.Patch(ctx, body, nil)
	if err != nil {
		return nil, err
	}

	return response.Payload(), nil
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	return marshalDocument(&c.document)
}
