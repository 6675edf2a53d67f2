package message

import (
	"io"
	"net/http"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/msghdr/header"
)

// HTTPSink returns a sink that mirrors the committed headers into w.Header().
// Each value is added as a separate header value, removed headers are deleted.
// Mutations after w.WriteHeader has been called have no effect on the wire.
func HTTPSink(w http.ResponseWriter) header.Sink {
	return httpSink{w}
}

type httpSink struct {
	w http.ResponseWriter
}

func (s httpSink) CommitHeader(name string, values []string) error {
	h := s.w.Header()
	h.Del(name)
	for _, v := range values {
		h.Add(name, v)
	}
	return nil
}

func (s httpSink) RemoveHeader(name string) error {
	s.w.Header().Del(name)
	return nil
}

// WriterSink returns a sink that writes every committed header as
// a "Name: value1,value2" line terminated with CRLF.
// Removals are not written, the output is append-only.
func WriterSink(w io.Writer) header.Sink {
	return writerSink{w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) CommitHeader(name string, values []string) error {
	_, err := io.WriteString(s.w, name+": "+strings.Join(values, ",")+"\r\n")
	return errtrace.Wrap(err)
}

func (writerSink) RemoveHeader(string) error { return nil }
