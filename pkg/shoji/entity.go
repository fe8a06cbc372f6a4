package shoji

var entityNavigation = []string{"catalogs", "fragments", "views", "urls"}

// Entity is a document representing a single resource. Its attributes
// live in a body tuple; when the entity's own URL is known the tuple is
// bound to it, so fetching the tuple re-requests the entity itself.
type Entity struct {
	document
	body *Tuple
}

// NewEntity returns a stub entity with an empty body and no self URL,
// typically used as the payload of Catalog.Create.
func NewEntity(session Session) *Entity {
	members := NewMembers()
	members.Set("body", NewMembers())
	return NewEntityFromMembers(session, members)
}

// NewEntityAt returns an entity located at selfURL with the given body
// attributes.
func NewEntityAt(session Session, selfURL string, body *Members) *Entity {
	members := NewMembers()
	members.Set("self", selfURL)
	members.Set("body", body)
	return NewEntityFromMembers(session, members)
}

// NewEntityFromMembers builds an entity from raw document members. A
// missing body defaults to an empty attribute set; the body is wrapped
// in a tuple bound to the self URL when one is present.
func NewEntityFromMembers(session Session, members *Members) *Entity {
	if members == nil {
		members = NewMembers()
	}
	members.Delete("element")

	if !members.Has("body") {
		members.Set("body", NewMembers())
	}

	selfURL := ""
	if v, ok := members.Get("self"); ok {
		if u, ok := v.(string); ok {
			selfURL = u
		}
	}

	body := bindBody(session, selfURL, members)

	return &Entity{
		document: document{
			session:    session,
			members:    members,
			element:    ElementEntity,
			navigation: entityNavigation,
		},
		body: body,
	}
}

func bindBody(session Session, selfURL string, members *Members) *Tuple {
	raw, _ := members.Get("body")

	switch v := raw.(type) {
	case *Tuple:
		if v.EntityURL() == selfURL {
			return v
		}
		// tuple URLs are immutable, rebinding means a new tuple over
		// the same attributes
		rebound := NewTuple(session, selfURL, v.Members())
		members.Set("body", rebound)
		return rebound
	case *Members:
		tuple := NewTuple(session, selfURL, v)
		members.Set("body", tuple)
		return tuple
	}

	tuple := NewTuple(session, selfURL, NewMembers())
	members.Set("body", tuple)
	return tuple
}

// Body returns the entity's attribute tuple.
func (e *Entity) Body() *Tuple {
	return e.body
}

// SetSelf records the entity's URL, as reported by the server after a
// create, and rebinds the body tuple to it.
func (e *Entity) SetSelf(selfURL string) {
	e.members.Set("self", selfURL)
	e.body = bindBody(e.session, selfURL, e.members)
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	return marshalDocument(&e.document)
}

var viewNavigation = []string{"views", "urls"}

// View is a pure navigation document: no index, no body, just links and
// opaque content, stored as-is.
type View struct {
	document
}

func NewView(session Session, members *Members) *View {
	if members == nil {
		members = NewMembers()
	}
	members.Delete("element")

	return &View{
		document: document{
			session:    session,
			members:    members,
			element:    ElementView,
			navigation: viewNavigation,
		},
	}
}

func (v *View) MarshalJSON() ([]byte, error) {
	return marshalDocument(&v.document)
}

// assert the variants cover the Document capability
var _ Document = (*Catalog)(nil)
var _ Document = (*Entity)(nil)
var _ Document = (*View)(nil)
