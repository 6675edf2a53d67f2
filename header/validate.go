package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"reflect"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/internal/grammar"
	"github.com/ghettovoice/msghdr/internal/util"
)

// ValidationMode selects how strictly header names and values are checked.
type ValidationMode int

const (
	// ValidateStrict checks names against the RFC 7230 token grammar and
	// every trimmed value against the field-value grammar.
	// It is the zero value and therefore the default.
	ValidateStrict ValidationMode = iota
	// ValidateLoose only checks that the name and the value are non-empty
	// and that the value has a supported type.
	ValidateLoose
)

func (m ValidationMode) String() string {
	switch m {
	case ValidateStrict:
		return "strict"
	case ValidateLoose:
		return "loose"
	default:
		return "ValidationMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ValidateName checks the header name.
// The returned error is a [*ValidationError] with [ErrInvalidName] cause.
func ValidateName(name string, mode ValidationMode) error {
	if name == "" {
		return errtrace.Wrap(newNameError(name, "must not be empty"))
	}
	if mode == ValidateStrict && !grammar.IsToken(name) {
		return errtrace.Wrap(newNameError(name, "must be an RFC 7230 token"))
	}
	return nil
}

// ValidateValue checks the header value of the header with the given name.
// The value is either a string or a slice of strings and numbers, see [Store.Add].
// The returned error is a [*ValidationError] with [ErrInvalidValue] cause.
func ValidateValue(name string, value any, mode ValidationMode) error {
	_, err := prepareValues(name, value, mode)
	return errtrace.Wrap(err)
}

// prepareValues validates the value and converts it to the list of trimmed strings.
func prepareValues(name string, value any, mode ValidationMode) ([]string, error) {
	var vals []string
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, errtrace.Wrap(newValueError(name, "must not be empty"))
		}
		vals = []string{util.TrimWS(v)}
	case []byte:
		if len(v) == 0 {
			return nil, errtrace.Wrap(newValueError(name, "must not be empty"))
		}
		vals = []string{util.TrimWS(string(v))}
	case []string:
		if len(v) == 0 {
			return nil, errtrace.Wrap(newValueError(name, "must not be empty"))
		}
		vals = make([]string, len(v))
		for i := range v {
			vals[i] = util.TrimWS(v[i])
		}
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			return nil, errtrace.Wrap(newValueError(name, "must be a string or a list of strings"))
		}
		if rv.Len() == 0 {
			return nil, errtrace.Wrap(newValueError(name, "must not be empty"))
		}
		vals = make([]string, rv.Len())
		for i := range rv.Len() {
			s, ok := scalarString(rv.Index(i).Interface())
			if !ok {
				return nil, errtrace.Wrap(newValueError(name, "list items must be strings or numbers"))
			}
			vals[i] = util.TrimWS(s)
		}
	}

	if mode == ValidateStrict {
		for _, v := range vals {
			if !grammar.IsFieldValue(v) {
				return nil, errtrace.Wrap(newValueError(name, "must be an RFC 7230 field value"))
			}
		}
	}
	return vals, nil
}

func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return "", false
	}
}
