package message

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/header"
)

// RequestOptions are the options for a [Request].
type RequestOptions struct {
	// ProtoVersion is the protocol version.
	// If empty, the [DefaultProtoVersion] is used.
	ProtoVersion string
	// Body is the request body.
	Body io.Reader
	// Validation is the header validation mode.
	Validation header.ValidationMode
	// Logger is the logger.
	// If nil, the [log.Default] is used.
	Logger *slog.Logger
}

func (o *RequestOptions) msgOpts() msgOptions {
	if o == nil {
		return msgOptions{}
	}
	return msgOptions{
		proto:  o.ProtoVersion,
		body:   o.Body,
		valid:  o.Validation,
		logger: o.Logger,
	}
}

// Request is an inbound or outbound request message.
// Its headers are never forwarded anywhere.
type Request struct {
	msg
}

// NewRequest creates a request without headers.
// Options are optional, if nil, default values are used (see [RequestOptions]).
func NewRequest(opts *RequestOptions) *Request {
	o := opts.msgOpts()
	return &Request{newMsg(o.proto, o.body, header.NewStore(o.storeOpts()))}
}

// RequestFromHTTP creates a request from the [http.Request] metadata.
// The Host header is restored from [http.Request.Host] since net/http removes it from the header map.
// The request body is passed through.
func RequestFromHTTP(req *http.Request, opts *RequestOptions) (*Request, error) {
	if req == nil {
		return nil, errtrace.Wrap(header.NewInvalidArgumentError("nil request"))
	}

	o := opts.msgOpts()
	hdrs, err := header.FromMap(req.Header, o.storeOpts())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if req.Host != "" && !hdrs.Has("Host") {
		if err := hdrs.Add("Host", req.Host, header.Replace); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	proto := o.proto
	if proto == "" && req.ProtoMajor > 0 {
		proto = strconv.Itoa(req.ProtoMajor) + "." + strconv.Itoa(req.ProtoMinor)
	}
	body := o.body
	if body == nil && req.Body != nil && req.Body != http.NoBody {
		body = req.Body
	}
	return &Request{newMsg(proto, body, hdrs)}, nil
}

// RequestFromEnviron creates a request from the CGI-style environment, see [header.FromEnviron].
// The protocol version is taken from SERVER_PROTOCOL when it is not set in the options.
func RequestFromEnviron(environ []string, opts *RequestOptions) (*Request, error) {
	o := opts.msgOpts()
	hdrs, err := header.FromEnviron(environ, o.storeOpts())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	proto := o.proto
	if proto == "" {
		for _, kv := range environ {
			if v, ok := strings.CutPrefix(kv, "SERVER_PROTOCOL="); ok {
				_, proto, _ = strings.Cut(v, "/")
				break
			}
		}
	}
	return &Request{newMsg(proto, o.body, hdrs)}, nil
}

func (r *Request) clone() *Request { return &Request{r.msg.clone()} }

// WithProtoVersion returns a copy of the request with the protocol version.
func (r *Request) WithProtoVersion(version string) *Request {
	r2 := r.clone()
	r2.proto = version
	return r2
}

// WithBody returns a copy of the request with the body.
func (r *Request) WithBody(body io.Reader) *Request {
	r2 := r.clone()
	r2.body = body
	return r2
}

// WithHeader returns a copy of the request with the header values replaced.
func (r *Request) WithHeader(name string, value any) (*Request, error) {
	r2 := r.clone()
	if err := r2.addHeader(name, value, header.Replace); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return r2, nil
}

// WithAddedHeader returns a copy of the request with the values appended to the header.
func (r *Request) WithAddedHeader(name string, value any) (*Request, error) {
	r2 := r.clone()
	if err := r2.addHeader(name, value, header.Append); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return r2, nil
}

// WithoutHeader returns a copy of the request without the header.
func (r *Request) WithoutHeader(name string) *Request {
	r2 := r.clone()
	r2.hdrs.Remove(name)
	return r2
}
