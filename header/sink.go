package header

//go:generate go tool mockgen -typed -destination=../internal/testutil/sinkmock/sink.go -package=sinkmock . Sink

// Sink receives the committed mutations of a [Store].
// It decouples the store from whatever has to mirror its state, typically
// the header section of an outbound response.
//
// CommitHeader is called after a successful add with the display name and
// the resulting values. RemoveHeader is called after an entry was removed.
// Errors returned by a sink never roll back the store mutation, the store
// only logs them.
type Sink interface {
	CommitHeader(name string, values []string) error
	RemoveHeader(name string) error
}

type noopSink struct{}

func (noopSink) CommitHeader(string, []string) error { return nil }

func (noopSink) RemoveHeader(string) error { return nil }

// NoopSink discards all notifications.
var NoopSink Sink = noopSink{}

// SinkFuncs adapts plain functions to the [Sink] interface.
// Nil functions are skipped.
type SinkFuncs struct {
	Commit func(name string, values []string) error
	Remove func(name string) error
}

func (f SinkFuncs) CommitHeader(name string, values []string) error {
	if f.Commit == nil {
		return nil
	}
	return f.Commit(name, values) //errtrace:skip
}

func (f SinkFuncs) RemoveHeader(name string) error {
	if f.Remove == nil {
		return nil
	}
	return f.Remove(name) //errtrace:skip
}
