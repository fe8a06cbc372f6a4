package shoji_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/matryer/is"

	"github.com/shojikit/shoji-client/pkg/shoji"
	"github.com/shojikit/shoji-client/pkg/test"
)

func TestEntityBodyIsBoundToSelfURL(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}
	session.GetFunc = func(ctx context.Context, url string, headers map[string][]string) (*shoji.Response, error) {
		return newTestResponse(session, http.StatusOK, nil, entityJSON), nil
	}

	entity := parseEntity(is, session, `{
		"element": "shoji:entity",
		"self": "https://x.example/api/e1/",
		"body": {"n": 1}
	}`)

	is.Equal(entity.Body().EntityURL(), "https://x.example/api/e1/")

	n, ok := entity.Body().Get("n")
	is.True(ok)
	is.Equal(n, float64(1))

	// fetching the body tuple re-requests the entity itself
	_, err := entity.Body().Fetch(context.Background(), nil)
	is.NoErr(err)
	is.Equal(len(session.GetCalls()), 1)
	is.Equal(session.GetCalls()[0].URL, "https://x.example/api/e1/")
}

func TestEntityBodyDefaultsToEmpty(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	entity := parseEntity(is, session, `{"element": "shoji:entity"}`)

	is.Equal(entity.Body().Members().Len(), 0)
	is.Equal(entity.Self(), "")
}

func TestStubEntityMarshalsWithElementTag(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	entity := shoji.NewEntity(session)

	b, err := json.Marshal(entity)

	is.NoErr(err)
	is.Equal(string(b), `{"element":"shoji:entity","body":{}}`)
}

func TestEntityAtBindsBodyTuple(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	body := shoji.NewMembers()
	body.Set("name", "a")
	entity := shoji.NewEntityAt(session, "https://x.example/api/e1/", body)

	is.Equal(entity.Self(), "https://x.example/api/e1/")
	is.Equal(entity.Body().EntityURL(), "https://x.example/api/e1/")
	is.Equal(entity.Element(), shoji.ElementEntity)
}

func TestSetSelfRebindsBodyTuple(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	entity := shoji.NewEntity(session)
	entity.Body().Set("name", "a")

	entity.SetSelf("https://x.example/api/e9/")

	is.Equal(entity.Self(), "https://x.example/api/e9/")
	is.Equal(entity.Body().EntityURL(), "https://x.example/api/e9/")

	// the rebound tuple keeps the attributes that were already set
	name, ok := entity.Body().Get("name")
	is.True(ok)
	is.Equal(name, "a")
}

func TestViewStoresMembersAsIs(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}

	payload := shoji.ParsePayload(session, []byte(`{
		"element": "shoji:view",
		"self": "https://x.example/api/v1/",
		"value": [1, 2, 3],
		"views": {"next": "https://x.example/api/v2/"}
	}`))

	view, ok := payload.(*shoji.View)
	is.True(ok)
	is.Equal(view.Element(), shoji.ElementView)
	is.Equal(view.Self(), "https://x.example/api/v1/")

	value, ok := view.Members().Get("value")
	is.True(ok)
	is.Equal(value, []any{float64(1), float64(2), float64(3)})
}

func TestViewResolvesThroughViewsCollection(t *testing.T) {
	is := is.New(t)
	session := &test.SessionMock{}
	session.GetFunc = func(ctx context.Context, url string, headers map[string][]string) (*shoji.Response, error) {
		return newTestResponse(session, http.StatusOK, nil, `{"element": "shoji:view", "value": 7}`), nil
	}

	payload := shoji.ParsePayload(session, []byte(`{
		"element": "shoji:view",
		"self": "https://x.example/api/v1/",
		"views": {"next": "https://x.example/api/v2/"}
	}`))

	view, ok := payload.(*shoji.View)
	is.True(ok)

	resolution, err := view.Resolve(context.Background(), "next")

	is.NoErr(err)
	is.Equal(resolution.Source, shoji.ResolvedRemote)
	is.Equal(session.GetCalls()[0].URL, "https://x.example/api/v2/")
}
