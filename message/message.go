// Package message wraps a [header.Store] into request and response messages
// with immutable builder methods.
//
// Every With* method returns a new message holding a deep copy of the headers,
// the receiver is never modified:
//
//	req := message.NewRequest(nil)
//	req2, err := req.WithHeader("Auth", "Bearer Token")
//	req.HasHeader("auth")  // false
//	req2.HasHeader("auth") // true
//
// Responses forward every header mutation to the [header.Sink] set in
// [ResponseOptions], see [HTTPSink] and [WriterSink].
package message

//go:generate go tool errtrace -w .

import (
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/header"
)

// DefaultProtoVersion is the protocol version of messages created without one.
const DefaultProtoVersion = "1.1"

// Message is the read-only view shared by [*Request] and [*Response].
type Message interface {
	ProtoVersion() string
	Body() io.Reader
	Headers() []header.Field
	HasHeader(name string) bool
	Header(name string) []string
	HeaderLine(name string) string
}

type msg struct {
	proto string
	body  io.Reader
	hdrs  *header.Store
}

func newMsg(proto string, body io.Reader, hdrs *header.Store) msg {
	if proto == "" {
		proto = DefaultProtoVersion
	}
	return msg{proto: proto, body: body, hdrs: hdrs}
}

// ProtoVersion returns the protocol version, e.g. "1.1".
func (m *msg) ProtoVersion() string { return m.proto }

// Body returns the message body.
func (m *msg) Body() io.Reader { return m.body }

// Headers returns copies of all headers in insertion order.
func (m *msg) Headers() []header.Field { return m.hdrs.Fields() }

// HasHeader reports whether the header exists, the name is matched case-insensitively.
func (m *msg) HasHeader(name string) bool { return m.hdrs.Has(name) }

// Header returns the header values or an empty slice.
func (m *msg) Header(name string) []string { return m.hdrs.Get(name) }

// HeaderLine returns the header values joined with a comma or an empty string.
func (m *msg) HeaderLine(name string) string { return m.hdrs.Line(name) }

// clone deep copies the headers, a zero message gets an empty store with default options.
func (m *msg) clone() msg {
	hdrs := m.hdrs.Clone()
	if hdrs == nil {
		hdrs = header.NewStore(nil)
	}
	return msg{proto: m.proto, body: m.body, hdrs: hdrs}
}

func (m *msg) addHeader(name string, value any, mode header.Mode) error {
	return errtrace.Wrap(m.hdrs.Add(name, value, mode))
}

// options shared by requests and responses
type msgOptions struct {
	proto  string
	body   io.Reader
	valid  header.ValidationMode
	sink   header.Sink
	logger *slog.Logger
}

func (o msgOptions) storeOpts() *header.StoreOptions {
	return &header.StoreOptions{
		Validation: o.valid,
		Sink:       o.sink,
		Logger:     o.logger,
	}
}
