// Package shoji implements a client side object model for shoji
// hypermedia APIs. Server resources arrive as self describing JSON
// documents (catalogs, entities and views) whose attribute lookups are
// answered locally when possible and by following embedded navigation
// links otherwise.
package shoji

import (
	"bytes"
	"encoding/json"
)

const (
	ElementCatalog = "shoji:catalog"
	ElementEntity  = "shoji:entity"
	ElementView    = "shoji:view"
)

// ParseElement promotes a decoded JSON value into a typed document by
// dispatching on its element tag. Lists are promoted element by
// element. Objects with an unknown or missing tag, and plain scalars,
// pass through unchanged.
func ParseElement(session Session, value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, ParseElement(session, item))
		}
		return out
	case *Members:
		tag, _ := v.Get("element")

		switch tag {
		case ElementCatalog:
			return NewCatalog(session, v)
		case ElementEntity:
			return NewEntityFromMembers(session, v)
		case ElementView:
			return NewView(session, v)
		}

		return v
	}

	return value
}

// ParsePayload decodes a raw response body, preserving member order,
// and promotes the result. It returns nil when the body is empty or not
// valid JSON, which transports use as their "no payload" sentinel.
func ParsePayload(session Session, body []byte) any {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	value, err := decodeOrderedValue(dec)
	if err != nil {
		return nil
	}

	return ParseElement(session, value)
}
