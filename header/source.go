package header

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/internal/util"
)

// FromFields creates a store and adds the fields in order with [Replace] mode,
// the same way as [Store.Add] does. It stops on the first invalid field.
func FromFields(fields []Field, opts *StoreOptions) (*Store, error) {
	s := NewStore(opts)
	for _, f := range fields {
		if err := s.Add(f.Name, f.Values, Replace); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return s, nil
}

// FromMap creates a store from the name to values mapping, for example from [net/http.Header].
// Names are added in sorted order, so the result does not depend on the map iteration order.
// Names that share the same [Normalize] key are merged with [Replace] mode.
func FromMap(m map[string][]string, opts *StoreOptions) (*Store, error) {
	s := NewStore(opts)
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := s.Add(name, m[name], Replace); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return s, nil
}

// FromEnviron creates a store from the request meta-variables of a CGI-style environment,
// each entry in the "KEY=value" form (see [os.Environ]).
//
// Variables prefixed with "HTTP_" become headers: the prefix is dropped and
// every underscore-separated word is title-cased, so HTTP_X_AUTH becomes X-Auth.
// CONTENT_TYPE, CONTENT_LENGTH and CONTENT_MD5 are included as well.
// Entries without a value are skipped. The entries are added in order.
func FromEnviron(environ []string, opts *StoreOptions) (*Store, error) {
	s := NewStore(opts)
	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		name, ok := envHeaderName(key)
		if !ok {
			continue
		}
		if val == "" {
			s.getLog().LogAttrs(context.Background(), slog.LevelDebug, "skip empty environment header",
				slog.String("key", key),
			)
			continue
		}
		if err := s.Add(name, val, Replace); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return s, nil
}

var envContentKeys = map[string]bool{
	"CONTENT_TYPE":   true,
	"CONTENT_LENGTH": true,
	"CONTENT_MD5":    true,
}

func envHeaderName(key string) (string, bool) {
	switch {
	case envContentKeys[key]:
	case strings.HasPrefix(key, "HTTP_") && len(key) > len("HTTP_"):
		key = key[len("HTTP_"):]
	default:
		return "", false
	}

	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = util.UCaseASCII(w[:1]) + util.LCaseASCII(w[1:])
	}
	return strings.Join(words, "-"), true
}
