package header

import (
	"bytes"
	"encoding/json"
	"slices"

	"braces.dev/errtrace"
	"github.com/iancoleman/orderedmap"
)

// MarshalJSON encodes the store as a JSON object which maps display names
// to arrays of values. The object keys keep the insertion order.
func (s *Store) MarshalJSON() ([]byte, error) {
	om := orderedmap.New()
	om.SetEscapeHTML(false)
	for dn, vals := range s.All() {
		om.Set(dn, slices.Clone(vals))
	}
	return errtrace.Wrap2(om.MarshalJSON())
}

var jsonNull = []byte("null")

// UnmarshalJSON replaces the store contents with the headers of a JSON object.
// Object values are either strings or arrays of strings and numbers.
// Numbers keep their literal form, e.g. 1e3 is stored as "1e3".
// Every entry is validated and added in the document order as by [Store.Add],
// if any entry is invalid the store is left untouched.
func (s *Store) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}

	// orderedmap gives the key order, values are decoded again to keep numbers exact
	om := orderedmap.New()
	if err := om.UnmarshalJSON(data); err != nil {
		return errtrace.Wrap(NewInvalidArgumentError(err))
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errtrace.Wrap(NewInvalidArgumentError(err))
	}

	tmp := &Store{valid: s.valid, log: s.log}
	for _, name := range om.Keys() {
		v, err := decodeJSONValue(raw[name])
		if err != nil {
			return errtrace.Wrap(NewInvalidArgumentError(err))
		}
		if err := tmp.Add(name, v, Replace); err != nil {
			return errtrace.Wrap(err)
		}
	}

	s.reset(tmp)
	return nil
}

func decodeJSONValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return v, nil
}
