package header_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/msghdr/header"
)

func mustAdd(t *testing.T, s *header.Store, name string, value any, mode header.Mode) {
	t.Helper()

	if err := s.Add(name, value, mode); err != nil {
		t.Fatalf("s.Add(%q, %#v, %v) error = %v, want nil", name, value, mode, err)
	}
}

func TestStore_CaseAndDelimiterInsensitive(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "X-Auth", "a", header.Replace)

	for _, name := range []string{"x_auth", "X_AUTH", "x-auth", "X-Auth"} {
		if !s.Has(name) {
			t.Errorf("s.Has(%q) = false, want true", name)
		}
	}
	if s.Has("X-Auth-2") {
		t.Errorf("s.Has(%q) = true, want false", "X-Auth-2")
	}
}

func TestStore_Add(t *testing.T) {
	t.Parallel()

	type add struct {
		name string
		val  any
		mode header.Mode
	}

	cases := []struct {
		name       string
		adds       []add
		wantFields []header.Field
	}{
		{
			"replace keeps first spelling",
			[]add{{"Auth", "A", header.Replace}, {"AUTH", "B", header.Replace}},
			[]header.Field{{"Auth", []string{"B"}}},
		},
		{
			"append",
			[]add{{"Auth", "A", header.Replace}, {"auth", []string{"B", "C"}, header.Append}},
			[]header.Field{{"Auth", []string{"A", "B", "C"}}},
		},
		{
			"append keeps duplicates",
			[]add{{"Via", "a", header.Append}, {"via", []string{"a", "a"}, header.Append}},
			[]header.Field{{"Via", []string{"a", "a", "a"}}},
		},
		{
			"display name stickiness",
			[]add{{"X-Auth", "v1", header.Replace}, {"X-AUTH", "v2", header.Replace}},
			[]header.Field{{"X-Auth", []string{"v2"}}},
		},
		{
			"underscores become hyphens",
			[]add{{"Api_Auth", "New Bearer Token        ", header.Append}},
			[]header.Field{{"Api-Auth", []string{"New Bearer Token"}}},
		},
		{
			"values are trimmed",
			[]add{{"X", []any{" a ", "\tb\r\n", 3}, header.Replace}},
			[]header.Field{{"X", []string{"a", "b", "3"}}},
		},
		{
			"insertion order of first add",
			[]add{
				{"B", "1", header.Replace},
				{"A", "2", header.Replace},
				{"b", "3", header.Replace},
				{"C", "4", header.Append},
				{"a", "5", header.Append},
			},
			[]header.Field{
				{"B", []string{"3"}},
				{"A", []string{"2", "5"}},
				{"C", []string{"4"}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			s := header.NewStore(nil)
			for _, a := range c.adds {
				mustAdd(t, s, a.name, a.val, a.mode)
			}
			if diff := cmp.Diff(s.Fields(), c.wantFields); diff != "" {
				t.Errorf("s.Fields() = %+v, want %+v\ndiff (-got +want):\n%v", s.Fields(), c.wantFields, diff)
			}
		})
	}
}

func TestStore_ReplaceVsAppend(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "Auth", "A", header.Replace)
	mustAdd(t, s, "AUTH", "B", header.Replace)
	if got, want := s.Get("auth"), []string{"B"}; !cmp.Equal(got, want) {
		t.Errorf("s.Get(%q) = %q, want %q", "auth", got, want)
	}

	s = header.NewStore(nil)
	mustAdd(t, s, "Auth", "A", header.Replace)
	mustAdd(t, s, "auth", []string{"B", "C"}, header.Append)
	if got, want := s.Get("AUTH"), []string{"A", "B", "C"}; !cmp.Equal(got, want) {
		t.Errorf("s.Get(%q) = %q, want %q", "AUTH", got, want)
	}
}

func TestStore_SetAppend(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	if err := s.Set("Accept", "text/html"); err != nil {
		t.Fatalf("s.Set() error = %v, want nil", err)
	}
	if err := s.Append("accept", "application/json"); err != nil {
		t.Fatalf("s.Append() error = %v, want nil", err)
	}
	if got, want := s.Line("Accept"), "text/html,application/json"; got != want {
		t.Errorf("s.Line(%q) = %q, want %q", "Accept", got, want)
	}

	err := s.Set("Accept")
	if diff := cmp.Diff(err, header.ErrInvalidValue, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("s.Set(%q) error = %v, want %v\ndiff (-got +want):\n%v", "Accept", err, header.ErrInvalidValue, diff)
	}
}

func TestStore_Remove(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "Auth", "A", header.Replace)
	mustAdd(t, s, "Version", "1", header.Replace)
	mustAdd(t, s, "X", "x", header.Replace)

	s.Remove("VERSION")
	if s.Has("version") {
		t.Errorf("s.Has(%q) = true, want false", "version")
	}
	s.Remove("version")
	s.Remove("never-added")

	if got, want := s.Names(), []string{"Auth", "X"}; !cmp.Equal(got, want) {
		t.Errorf("s.Names() = %q, want %q", got, want)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("s.Len() = %d, want 2", got)
	}

	// re-added header takes the new spelling and goes to the end
	mustAdd(t, s, "VERSION", "2", header.Replace)
	want := []header.Field{
		{"Auth", []string{"A"}},
		{"X", []string{"x"}},
		{"VERSION", []string{"2"}},
	}
	if diff := cmp.Diff(s.Fields(), want); diff != "" {
		t.Errorf("s.Fields() = %+v, want %+v\ndiff (-got +want):\n%v", s.Fields(), want, diff)
	}
}

func TestStore_UnknownLookups(t *testing.T) {
	t.Parallel()

	for _, s := range []*header.Store{nil, {}, header.NewStore(nil)} {
		if got := s.Get("Nope"); got == nil || len(got) != 0 {
			t.Errorf("s.Get(%q) = %#v, want empty slice", "Nope", got)
		}
		if got := s.Line("Nope"); got != "" {
			t.Errorf("s.Line(%q) = %q, want empty string", "Nope", got)
		}
		if s.Has("Nope") {
			t.Errorf("s.Has(%q) = true, want false", "Nope")
		}
		if got := s.Fields(); got == nil || len(got) != 0 {
			t.Errorf("s.Fields() = %#v, want empty slice", got)
		}
		if got := s.Len(); got != 0 {
			t.Errorf("s.Len() = %d, want 0", got)
		}
		s.Remove("Nope")
	}
}

func TestStore_ZeroValue(t *testing.T) {
	t.Parallel()

	var s header.Store
	mustAdd(t, &s, "X-Auth", "a", header.Replace)
	if got, want := s.Line("x_auth"), "a"; got != want {
		t.Errorf("s.Line(%q) = %q, want %q", "x_auth", got, want)
	}
}

func TestStore_NilAdd(t *testing.T) {
	t.Parallel()

	var s *header.Store
	err := s.Add("X", "1", header.Replace)
	if diff := cmp.Diff(err, header.ErrInvalidArgument, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("nil.Add() error = %v, want %v\ndiff (-got +want):\n%v", err, header.ErrInvalidArgument, diff)
	}
	if err := s.Set("X", "1"); !errors.Is(err, header.ErrInvalidArgument) {
		t.Errorf("nil.Set() error = %v, want %v", err, header.ErrInvalidArgument)
	}
}

func TestStore_ValidationFailureLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hdrName string
		val     any
		mode    header.Mode
		wantErr error
	}{
		{"control char", "X", "bad\x01value", header.Replace, header.ErrInvalidValue},
		{"control char append", "Auth", []string{"ok", "bad\x01"}, header.Append, header.ErrInvalidValue},
		{"space in name", "Bad Name!", "v", header.Replace, header.ErrInvalidName},
		{"empty name", "", "v", header.Replace, header.ErrInvalidName},
		{"empty value", "Auth", "", header.Replace, header.ErrInvalidValue},
		{"empty list", "Auth", []string{}, header.Append, header.ErrInvalidValue},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			s := header.NewStore(nil)
			mustAdd(t, s, "Auth", "A", header.Replace)
			want := s.Fields()

			err := s.Add(c.hdrName, c.val, c.mode)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("s.Add(%q, %#v) error = %v, want %v\ndiff (-got +want):\n%v", c.hdrName, c.val, err, c.wantErr, diff)
			}
			var verr *header.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("errors.As(err, *header.ValidationError) = false, want true")
			}
			if diff := cmp.Diff(s.Fields(), want); diff != "" {
				t.Errorf("s.Fields() = %+v, want %+v\ndiff (-got +want):\n%v", s.Fields(), want, diff)
			}
		})
	}
}

func TestStore_ValidationModes(t *testing.T) {
	t.Parallel()

	strict := header.NewStore(nil)
	if got := strict.Validation(); got != header.ValidateStrict {
		t.Errorf("strict.Validation() = %v, want %v", got, header.ValidateStrict)
	}
	if err := strict.Add("X-Custom.Header", "v", header.Replace); err != nil {
		t.Errorf("strict.Add(%q) error = %v, want nil", "X-Custom.Header", err)
	}
	if err := strict.Add("Bad Name!", "v", header.Replace); !errors.Is(err, header.ErrInvalidName) {
		t.Errorf("strict.Add(%q) error = %v, want %v", "Bad Name!", err, header.ErrInvalidName)
	}

	loose := header.NewStore(&header.StoreOptions{Validation: header.ValidateLoose})
	if got := loose.Validation(); got != header.ValidateLoose {
		t.Errorf("loose.Validation() = %v, want %v", got, header.ValidateLoose)
	}
	mustAdd(t, loose, "Bad Name!", "bad\x01value", header.Replace)
	if got, want := loose.Line("bad name!"), "bad\x01value"; got != want {
		t.Errorf("loose.Line(%q) = %q, want %q", "bad name!", got, want)
	}
	if err := loose.Add("", "v", header.Replace); !errors.Is(err, header.ErrInvalidName) {
		t.Errorf("loose.Add(%q) error = %v, want %v", "", err, header.ErrInvalidName)
	}
	if err := loose.Add("X", []string{}, header.Replace); !errors.Is(err, header.ErrInvalidValue) {
		t.Errorf("loose.Add(%q, []) error = %v, want %v", "X", err, header.ErrInvalidValue)
	}
}

func TestStore_Clone(t *testing.T) {
	t.Parallel()

	a := header.NewStore(nil)
	mustAdd(t, a, "Auth", []string{"A", "B"}, header.Replace)

	b := a.Clone()
	mustAdd(t, b, "X", "1", header.Replace)
	mustAdd(t, b, "auth", "C", header.Append)
	b.Remove("nope")

	if a.Has("X") {
		t.Errorf("a.Has(%q) = true, want false", "X")
	}
	if got, want := a.Get("Auth"), []string{"A", "B"}; !cmp.Equal(got, want) {
		t.Errorf("a.Get(%q) = %q, want %q", "Auth", got, want)
	}
	if got, want := b.Get("Auth"), []string{"A", "B", "C"}; !cmp.Equal(got, want) {
		t.Errorf("b.Get(%q) = %q, want %q", "Auth", got, want)
	}

	b.Remove("Auth")
	if !a.Has("Auth") {
		t.Errorf("a.Has(%q) = false, want true", "Auth")
	}

	var nilStore *header.Store
	if got := nilStore.Clone(); got != nil {
		t.Errorf("nil.Clone() = %v, want nil", got)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "Auth", []string{"A", "B"}, header.Replace)

	vals := s.Get("auth")
	vals[0] = "Z"
	fields := s.Fields()
	fields[0].Values[1] = "Z"

	if got, want := s.Get("auth"), []string{"A", "B"}; !cmp.Equal(got, want) {
		t.Errorf("s.Get(%q) = %q, want %q", "auth", got, want)
	}
}

func TestStore_All(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "A", "1", header.Replace)
	mustAdd(t, s, "B", "2", header.Replace)
	mustAdd(t, s, "C", "3", header.Replace)

	var names []string
	for name := range s.All() {
		names = append(names, name)
		if name == "B" {
			break
		}
	}
	if want := []string{"A", "B"}; !cmp.Equal(names, want) {
		t.Errorf("names = %q, want %q", names, want)
	}
}

func TestStore_Line(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "Accept", []string{"text/html", "application/json"}, header.Replace)
	if got, want := s.Line("Accept"), "text/html,application/json"; got != want {
		t.Errorf("s.Line(%q) = %q, want %q", "Accept", got, want)
	}

	f := s.Fields()[0]
	if got, want := f.Line(), "text/html,application/json"; got != want {
		t.Errorf("f.Line() = %q, want %q", got, want)
	}
}

func TestStore_Render(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "Auth", "Bearer Token", header.Replace)
	mustAdd(t, s, "auth", []string{"New Bearer Token", "Just Token"}, header.Append)
	mustAdd(t, s, "X-Auth", "X-Token", header.Replace)

	want := "Auth: Bearer Token,New Bearer Token,Just Token\r\n" +
		"X-Auth: X-Token\r\n"
	if got := s.Render(); got != want {
		t.Errorf("s.Render() = %q, want %q", got, want)
	}
	if got := s.String(); got != want {
		t.Errorf("s.String() = %q, want %q", got, want)
	}

	var sb strings.Builder
	num, err := s.RenderTo(&sb)
	if err != nil {
		t.Fatalf("s.RenderTo() error = %v, want nil", err)
	}
	if num != len(want) {
		t.Errorf("s.RenderTo() num = %d, want %d", num, len(want))
	}

	var nilStore *header.Store
	if got := nilStore.Render(); got != "" {
		t.Errorf("nil.Render() = %q, want empty string", got)
	}
}

func TestStore_LogValue(t *testing.T) {
	t.Parallel()

	s := header.NewStore(nil)
	mustAdd(t, s, "Auth", "A", header.Replace)
	mustAdd(t, s, "X", "1", header.Replace)

	v := s.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("s.LogValue().Kind() = %v, want %v", v.Kind(), slog.KindGroup)
	}
	got := map[string]any{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.Any()
	}
	want := map[string]any{"len": int64(2), "names": []string{"Auth", "X"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("s.LogValue() = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode header.Mode
		want string
	}{
		{header.Replace, "replace"},
		{header.Append, "append"},
		{header.Mode(9), "Mode(9)"},
	}

	for _, c := range cases {
		if got := c.mode.String(); got != c.want {
			t.Errorf("mode.String() = %q, want %q", got, c.want)
		}
	}
}
