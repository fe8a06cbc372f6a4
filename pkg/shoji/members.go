package shoji

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Members is an insertion ordered collection of named JSON values. Shoji
// documents and tuples are open keyed, so their contents live in one of
// these rather than in a struct. Nested objects decode to *Members,
// arrays to []any and scalars to string, float64, bool or nil.
type Members struct {
	keys   []string
	values map[string]any
}

func NewMembers() *Members {
	return &Members{
		keys:   []string{},
		values: map[string]any{},
	}
}

// Set adds or replaces the value stored under key. A replaced key keeps
// its original position.
func (m *Members) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key. The second return value
// distinguishes an absent key from a present key holding null.
func (m *Members) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Members) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

func (m *Members) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}

	delete(m.values, key)

	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *Members) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Members) Len() int {
	return len(m.keys)
}

// Copy returns a shallow copy: the container is independent of the
// original, nested values are shared.
func (m *Members) Copy() *Members {
	dup := NewMembers()
	for _, k := range m.keys {
		dup.Set(k, m.values[k])
	}
	return dup
}

func (m *Members) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal member %s: %w", k, err)
		}
		buf.Write(vb)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Members) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	v, err := decodeOrderedValue(dec)
	if err != nil {
		return err
	}

	obj, ok := v.(*Members)
	if !ok {
		return fmt.Errorf("expected a JSON object, got %T", v)
	}

	*m = *obj
	return nil
}

func decodeOrderedValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, float64, bool or nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := NewMembers()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}

			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected an object key, got %v", keyTok)
			}

			value, err := decodeOrderedValue(dec)
			if err != nil {
				return nil, err
			}

			obj.Set(key, value)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeOrderedValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}

		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return arr, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %v", delim)
}
