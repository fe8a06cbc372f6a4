package shoji_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/shojikit/shoji-client/pkg/shoji"
	"github.com/shojikit/shoji-client/pkg/test"
)

func TestParsePayloadDispatchesOnElementTag(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	_, isCatalog := shoji.ParsePayload(session, []byte(catalogJSON)).(*shoji.Catalog)
	is.True(isCatalog)

	_, isEntity := shoji.ParsePayload(session, []byte(entityJSON)).(*shoji.Entity)
	is.True(isEntity)

	_, isView := shoji.ParsePayload(session, []byte(`{"element": "shoji:view"}`)).(*shoji.View)
	is.True(isView)
}

func TestUnknownElementStaysRaw(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	payload := shoji.ParsePayload(session, []byte(`{"element": "shoji:color", "name": "blue"}`))

	raw, ok := payload.(*shoji.Members)
	is.True(ok)

	tag, _ := raw.Get("element")
	is.Equal(tag, "shoji:color") // unregistered tags keep their members untouched
}

func TestListOfDocumentsIsPromotedElementwise(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	payload := shoji.ParsePayload(session, []byte(`[
		{"element": "shoji:view", "value": 1},
		{"element": "shoji:view", "value": 2}
	]`))

	list, ok := payload.([]any)
	is.True(ok)
	is.Equal(len(list), 2)

	for _, item := range list {
		_, isView := item.(*shoji.View)
		is.True(isView)
	}
}

func TestScalarPayloadPassesThrough(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	is.Equal(shoji.ParsePayload(session, []byte(`"just a string"`)), "just a string")
	is.Equal(shoji.ParsePayload(session, []byte(`42`)), float64(42))
}

func TestUnparsableBodyYieldsNoPayload(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	is.Equal(shoji.ParsePayload(session, []byte("")), nil)
	is.Equal(shoji.ParsePayload(session, []byte("   ")), nil)
	is.Equal(shoji.ParsePayload(session, []byte("<html></html>")), nil)
}

func TestElementTagIsNotStoredAsMember(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	catalog := parseCatalog(is, session, catalogJSON)

	is.Equal(catalog.Element(), shoji.ElementCatalog)
	is.True(!catalog.Members().Has("element"))
}
