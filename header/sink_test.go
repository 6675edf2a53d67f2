package header_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/msghdr/header"
	"github.com/ghettovoice/msghdr/internal/testutil/sinkmock"
	"github.com/ghettovoice/msghdr/log"
)

func TestStore_Sink(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := sinkmock.NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().CommitHeader("X-Auth", []string{"v1"}).Return(nil),
		sink.EXPECT().CommitHeader("X-Auth", []string{"v1", "v2"}).Return(nil),
		sink.EXPECT().CommitHeader("X-Auth", []string{"v3"}).Return(nil),
		sink.EXPECT().RemoveHeader("X-Auth").Return(nil),
	)

	s := header.NewStore(&header.StoreOptions{Sink: sink})
	mustAdd(t, s, "X-Auth", "v1", header.Replace)
	mustAdd(t, s, "x_auth", "v2", header.Append)
	mustAdd(t, s, "X-AUTH", "v3", header.Replace)

	// no notifications for rejected or no-op mutations
	if err := s.Add("X-Auth", "bad\x01", header.Replace); err == nil {
		t.Errorf("s.Add() error = nil, want error")
	}
	s.Remove("x-auth")
	s.Remove("x-auth")
}

func TestStore_Sink_Clone(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sink := sinkmock.NewMockSink(ctrl)
	sink.EXPECT().CommitHeader("A", []string{"1"}).Return(nil)
	sink.EXPECT().CommitHeader("B", []string{"2"}).Return(nil)

	s := header.NewStore(&header.StoreOptions{Sink: sink})
	mustAdd(t, s, "A", "1", header.Replace)
	mustAdd(t, s.Clone(), "B", "2", header.Replace)
}

func TestStore_SinkErrorIsLogged(t *testing.T) {
	t.Parallel()

	errSink := errors.New("sink is down")
	var buf bytes.Buffer
	s := header.NewStore(&header.StoreOptions{
		Sink: header.SinkFuncs{
			Commit: func(string, []string) error { return errSink },
			Remove: func(string) error { return errSink },
		},
		Logger: log.NewConsole(&buf, slog.LevelWarn),
	})

	mustAdd(t, s, "X", "1", header.Replace)
	if got, want := s.Line("X"), "1"; got != want {
		t.Errorf("s.Line(%q) = %q, want %q", "X", got, want)
	}
	s.Remove("X")
	if s.Has("X") {
		t.Errorf("s.Has(%q) = true, want false", "X")
	}

	out := buf.String()
	for _, want := range []string{"failed to commit header", "failed to remove header", "sink is down"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, want it to contain %q", out, want)
		}
	}
}

func TestStore_UnmarshalJSON_Sink(t *testing.T) {
	t.Parallel()

	var got []string
	s := header.NewStore(&header.StoreOptions{
		Sink: header.SinkFuncs{
			Commit: func(name string, values []string) error {
				got = append(got, "commit "+name+": "+strings.Join(values, ","))
				return nil
			},
			Remove: func(name string) error {
				got = append(got, "remove "+name)
				return nil
			},
		},
	})
	mustAdd(t, s, "Old", "o", header.Replace)

	if err := json.Unmarshal([]byte(`{"Bad Name":"v"}`), s); err == nil {
		t.Fatalf("json.Unmarshal() error = nil, want error")
	}
	if err := json.Unmarshal([]byte(`{"A":["1","2"],"B":"3"}`), s); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}

	want := []string{
		"commit Old: o",
		"remove Old",
		"commit A: 1,2",
		"commit B: 3",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("sink calls = %q, want %q\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestSinkFuncs_Nil(t *testing.T) {
	t.Parallel()

	var f header.SinkFuncs
	if err := f.CommitHeader("X", []string{"1"}); err != nil {
		t.Errorf("f.CommitHeader() error = %v, want nil", err)
	}
	if err := f.RemoveHeader("X"); err != nil {
		t.Errorf("f.RemoveHeader() error = %v, want nil", err)
	}
	if err := header.NoopSink.CommitHeader("X", nil); err != nil {
		t.Errorf("header.NoopSink.CommitHeader() error = %v, want nil", err)
	}
}
