package header

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/internal/ioutil"
	"github.com/ghettovoice/msghdr/internal/util"
	"github.com/ghettovoice/msghdr/log"
)

// Mode selects how [Store.Add] merges values into an existing header.
type Mode int

const (
	// Replace overwrites all values of an existing header.
	Replace Mode = iota
	// Append adds the values after the existing ones, duplicates are kept.
	Append
)

func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Append:
		return "append"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Field is a header with all its values.
type Field struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Line returns the field values joined with a comma.
func (f Field) Line() string { return strings.Join(f.Values, ",") }

// StoreOptions are the options for a [Store].
type StoreOptions struct {
	// Validation selects the validation strictness.
	// The zero value is [ValidateStrict].
	Validation ValidationMode
	// Sink receives the committed mutations.
	// If nil, the [NoopSink] is used.
	Sink Sink
	// Logger is the logger.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *StoreOptions) validation() ValidationMode {
	if o == nil {
		return ValidateStrict
	}
	return o.Validation
}

func (o *StoreOptions) sink() Sink {
	if o == nil || o.Sink == nil {
		return NoopSink
	}
	return o.Sink
}

func (o *StoreOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Store is an ordered collection of multi-valued headers.
//
// Header names are matched by their [Normalize] key, so "X-Auth", "x_auth"
// and "X-AUTH" address the same header. The spelling under which a header was
// first added (see [DisplayName]) is kept for display and iteration,
// headers are iterated in the order they were first added.
//
// The zero value is an empty store with default options.
// A Store is not safe for concurrent mutation.
type Store struct {
	// display name -> values, never empty
	display map[string][]string
	// normalized key -> display name
	index map[string]string
	// display names in insertion order
	order []string

	valid ValidationMode
	sink  Sink
	log   *slog.Logger
}

// NewStore creates an empty store.
// Options are optional, if nil, default values are used (see [StoreOptions]).
func NewStore(opts *StoreOptions) *Store {
	return &Store{
		display: make(map[string][]string),
		index:   make(map[string]string),
		valid:   opts.validation(),
		sink:    opts.sink(),
		log:     opts.log(),
	}
}

func (s *Store) getSink() Sink {
	if s.sink == nil {
		return NoopSink
	}
	return s.sink
}

func (s *Store) getLog() *slog.Logger {
	if s.log == nil {
		return log.Default()
	}
	return s.log
}

// Validation returns the validation mode of the store.
func (s *Store) Validation() ValidationMode {
	if s == nil {
		return ValidateStrict
	}
	return s.valid
}

// Len returns the number of headers.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Has reports whether the header with the given name exists.
func (s *Store) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[Normalize(name)]
	return ok
}

// Get returns a copy of the values of the header with the given name.
// If the header is missing, Get returns an empty slice.
func (s *Store) Get(name string) []string {
	if s == nil {
		return []string{}
	}
	dn, ok := s.index[Normalize(name)]
	if !ok {
		return []string{}
	}
	return slices.Clone(s.display[dn])
}

// Line returns the values of the header with the given name joined with a comma.
// If the header is missing, Line returns an empty string.
func (s *Store) Line(name string) string {
	if s == nil {
		return ""
	}
	dn, ok := s.index[Normalize(name)]
	if !ok {
		return ""
	}
	return strings.Join(s.display[dn], ",")
}

// Names returns the display names in insertion order.
func (s *Store) Names() []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s.order)
}

// Fields returns copies of all headers in insertion order.
func (s *Store) Fields() []Field {
	if s == nil {
		return []Field{}
	}
	fields := make([]Field, 0, len(s.order))
	for dn, vals := range s.All() {
		fields = append(fields, Field{Name: dn, Values: slices.Clone(vals)})
	}
	return fields
}

// All returns an iterator over the display names and values in insertion order.
// The yielded slices are owned by the store and must not be modified.
// The store must not be mutated during the iteration.
func (s *Store) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if s == nil {
			return
		}
		for _, dn := range s.order {
			if !yield(dn, s.display[dn]) {
				return
			}
		}
	}
}

// Add validates the header and adds it to the store.
//
// The value is either a string or a slice whose items are strings or numbers.
// Each value is trimmed before it is stored.
// If a header with the same [Normalize] key exists, its values are
// replaced or appended according to the mode and the existing display name
// is kept. Otherwise, a new header is created with [DisplayName] of the name.
//
// On validation failure the store is left untouched and
// a [*ValidationError] is returned. Adding to a nil store fails with [ErrInvalidArgument].
func (s *Store) Add(name string, value any, mode Mode) error {
	if s == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil store"))
	}
	if err := ValidateName(name, s.valid); err != nil {
		return errtrace.Wrap(err)
	}
	vals, err := prepareValues(name, value, s.valid)
	if err != nil {
		return errtrace.Wrap(err)
	}

	if s.display == nil {
		s.display = make(map[string][]string)
		s.index = make(map[string]string)
	}

	dn := DisplayName(name)
	key := util.LCaseASCII(dn)
	if exist, ok := s.index[key]; ok {
		dn = exist
		if mode == Append {
			s.display[dn] = append(s.display[dn], vals...)
		} else {
			s.display[dn] = vals
		}
	} else {
		s.index[key] = dn
		s.display[dn] = vals
		s.order = append(s.order, dn)
	}

	s.getLog().LogAttrs(context.Background(), slog.LevelDebug, "header committed",
		slog.String("name", dn),
		slog.Any("values", s.display[dn]),
		slog.String("mode", mode.String()),
	)

	if err := s.getSink().CommitHeader(dn, slices.Clone(s.display[dn])); err != nil {
		s.getLog().LogAttrs(context.Background(), slog.LevelWarn, "header sink failed to commit header",
			slog.String("name", dn),
			slog.Any("error", err),
		)
	}
	return nil
}

// Set replaces the header values, see [Store.Add].
func (s *Store) Set(name string, values ...string) error {
	return errtrace.Wrap(s.Add(name, values, Replace))
}

// Append appends the values to the header, see [Store.Add].
func (s *Store) Append(name string, values ...string) error {
	return errtrace.Wrap(s.Add(name, values, Append))
}

// Remove removes the header with the given name.
// Removing a missing header is a no-op.
func (s *Store) Remove(name string) {
	if s == nil {
		return
	}
	key := Normalize(name)
	dn, ok := s.index[key]
	if !ok {
		return
	}

	delete(s.index, key)
	delete(s.display, dn)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == dn })

	s.getLog().LogAttrs(context.Background(), slog.LevelDebug, "header removed", slog.String("name", dn))

	if err := s.getSink().RemoveHeader(dn); err != nil {
		s.getLog().LogAttrs(context.Background(), slog.LevelWarn, "header sink failed to remove header",
			slog.String("name", dn),
			slog.Any("error", err),
		)
	}
}

// Clone returns a deep copy of the store.
// The copy shares the validation mode, the sink and the logger with the original.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}

	s2 := &Store{
		display: make(map[string][]string, len(s.display)),
		index:   make(map[string]string, len(s.index)),
		order:   slices.Clone(s.order),
		valid:   s.valid,
		sink:    s.sink,
		log:     s.log,
	}
	for dn, vals := range s.display {
		s2.display[dn] = slices.Clone(vals)
	}
	for key, dn := range s.index {
		s2.index[key] = dn
	}
	return s2
}

// RenderTo writes every header as a "Name: value1,value2" line terminated with CRLF.
func (s *Store) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for dn, vals := range s.All() {
		cw.Fprint(dn, ": ")
		for i, v := range vals {
			if i > 0 {
				cw.WriteString(",")
			}
			cw.WriteString(v)
		}
		cw.WriteString("\r\n")
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the headers rendered as by [Store.RenderTo].
func (s *Store) Render() string {
	if s == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	s.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (s *Store) String() string { return s.Render() }

// LogValue implements [slog.LogValuer].
func (s *Store) LogValue() slog.Value {
	if s == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.Int("len", s.Len()),
		slog.Any("names", s.order),
	)
}

// reset replaces the store contents with the contents of src.
// The sink is told about every removed and committed header.
func (s *Store) reset(src *Store) {
	for _, dn := range slices.Clone(s.order) {
		s.Remove(dn)
	}
	s.display = src.display
	s.index = src.index
	s.order = src.order
	for dn, vals := range s.All() {
		if err := s.getSink().CommitHeader(dn, slices.Clone(vals)); err != nil {
			s.getLog().LogAttrs(context.Background(), slog.LevelWarn, "header sink failed to commit header",
				slog.String("name", dn),
				slog.Any("error", err),
			)
		}
	}
}
