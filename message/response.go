package message

import (
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/header"
)

// ResponseOptions are the options for a [Response].
type ResponseOptions struct {
	// ProtoVersion is the protocol version.
	// If empty, the [DefaultProtoVersion] is used.
	ProtoVersion string
	// Body is the response body.
	Body io.Reader
	// Validation is the header validation mode.
	Validation header.ValidationMode
	// Sink receives every committed header mutation of the response
	// and of every response derived from it with the With* methods.
	// If nil, the [header.NoopSink] is used.
	Sink header.Sink
	// Logger is the logger.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *ResponseOptions) msgOpts() msgOptions {
	if o == nil {
		return msgOptions{}
	}
	return msgOptions{
		proto:  o.ProtoVersion,
		body:   o.Body,
		valid:  o.Validation,
		sink:   o.Sink,
		logger: o.Logger,
	}
}

// Response is an outbound response message.
type Response struct {
	msg
}

// NewResponse creates a response without headers.
// Options are optional, if nil, default values are used (see [ResponseOptions]).
func NewResponse(opts *ResponseOptions) *Response {
	o := opts.msgOpts()
	return &Response{newMsg(o.proto, o.body, header.NewStore(o.storeOpts()))}
}

func (r *Response) clone() *Response { return &Response{r.msg.clone()} }

// WithProtoVersion returns a copy of the response with the protocol version.
func (r *Response) WithProtoVersion(version string) *Response {
	r2 := r.clone()
	r2.proto = version
	return r2
}

// WithBody returns a copy of the response with the body.
func (r *Response) WithBody(body io.Reader) *Response {
	r2 := r.clone()
	r2.body = body
	return r2
}

// WithHeader returns a copy of the response with the header values replaced.
func (r *Response) WithHeader(name string, value any) (*Response, error) {
	r2 := r.clone()
	if err := r2.addHeader(name, value, header.Replace); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return r2, nil
}

// WithAddedHeader returns a copy of the response with the values appended to the header.
func (r *Response) WithAddedHeader(name string, value any) (*Response, error) {
	r2 := r.clone()
	if err := r2.addHeader(name, value, header.Append); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return r2, nil
}

// WithoutHeader returns a copy of the response without the header.
func (r *Response) WithoutHeader(name string) *Response {
	r2 := r.clone()
	r2.hdrs.Remove(name)
	return r2
}
