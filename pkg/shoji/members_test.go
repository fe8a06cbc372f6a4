package shoji

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
)

func TestMembersPreserveWireOrder(t *testing.T) {
	is := is.New(t)

	document := `{"zulu":1,"alpha":{"nested":true},"mike":[1,2],"bravo":null}`

	m := &Members{}
	is.NoErr(json.Unmarshal([]byte(document), m))
	is.Equal(m.Keys(), []string{"zulu", "alpha", "mike", "bravo"})

	b, err := json.Marshal(m)
	is.NoErr(err)
	is.Equal(string(b), document)
}

func TestMembersNestedObjectsDecodeOrdered(t *testing.T) {
	is := is.New(t)

	m := &Members{}
	is.NoErr(json.Unmarshal([]byte(`{"outer":{"b":1,"a":2}}`), m))

	v, ok := m.Get("outer")
	is.True(ok)

	nested, ok := v.(*Members)
	is.True(ok)
	is.Equal(nested.Keys(), []string{"b", "a"})
}

func TestMembersReplaceKeepsPosition(t *testing.T) {
	is := is.New(t)

	m := NewMembers()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	is.Equal(m.Keys(), []string{"a", "b"})

	v, _ := m.Get("a")
	is.Equal(v, 3)
}

func TestMembersDelete(t *testing.T) {
	is := is.New(t)

	m := NewMembers()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Delete("b")

	is.Equal(m.Keys(), []string{"a", "c"})
	is.True(!m.Has("b"))
	is.Equal(m.Len(), 2)
}

func TestMembersCopyIsShallow(t *testing.T) {
	is := is.New(t)

	nested := NewMembers()
	nested.Set("n", 1)

	m := NewMembers()
	m.Set("nested", nested)

	dup := m.Copy()
	dup.Set("extra", true)

	is.True(!m.Has("extra"))

	v, _ := dup.Get("nested")
	is.Equal(v, nested) // nested values are shared between copies
}

func TestMembersRejectNonObject(t *testing.T) {
	is := is.New(t)

	m := &Members{}
	is.True(json.Unmarshal([]byte(`[1,2,3]`), m) != nil)
}
