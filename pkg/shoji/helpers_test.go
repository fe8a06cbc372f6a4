package shoji_test

import (
	"net/http"

	"github.com/matryer/is"

	"github.com/shojikit/shoji-client/pkg/shoji"
)

func parseCatalog(is *is.I, session shoji.Session, document string) *shoji.Catalog {
	catalog, ok := shoji.ParsePayload(session, []byte(document)).(*shoji.Catalog)
	is.True(ok) // fixture should parse as a catalog
	return catalog
}

func parseEntity(is *is.I, session shoji.Session, document string) *shoji.Entity {
	entity, ok := shoji.ParsePayload(session, []byte(document)).(*shoji.Entity)
	is.True(ok) // fixture should parse as an entity
	return entity
}

func newTestResponse(session shoji.Session, statusCode int, headers map[string]string, body string) *shoji.Response {
	header := http.Header{}
	for name, value := range headers {
		header.Set(name, value)
	}

	return shoji.NewResponse(statusCode, header, []byte(body), shoji.ParsePayload(session, []byte(body)))
}
