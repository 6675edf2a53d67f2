// Package header provides an ordered, case-insensitive collection of
// multi-valued message headers.
//
// # Names
//
// Two header names address the same header when their [Normalize] keys
// are equal. Normalization replaces underscores with hyphens and lower-cases
// ASCII letters, so "X-Auth", "x_auth" and "X_AUTH" are the same header:
//
//	header.Normalize("X_Auth") // "x-auth"
//
// The name is stored in its [DisplayName] form, which only replaces the
// underscores. The display name of the first accepted spelling is kept for the
// lifetime of the header, later additions under another spelling update the
// values but not the name.
//
// # Store
//
// [Store] keeps two maps in lock-step: display name to values, and normalized
// key to display name. It preserves the order in which headers were first added.
//
//	s := header.NewStore(nil)
//	s.Add("X-Auth", "v1", header.Replace)
//	s.Add("X-AUTH", "v2", header.Append)
//	s.Get("x_auth")  // ["v1" "v2"]
//	s.Line("x-auth") // "v1,v2"
//	s.Fields()       // [{X-Auth [v1 v2]}]
//
// Lookups never fail: missing headers yield an empty slice or an empty string.
// [Store.Clone] returns an independent deep copy.
//
// # Validation
//
// Every value passed to [Store.Add] is validated before the store is touched.
// With [ValidateStrict] (the default) names must be RFC 7230 tokens and every
// trimmed value must consist of field-value octets: visible ASCII, SP, HTAB and
// the %x80-FF range. [ValidateLoose] only rejects empty names, empty values and
// unsupported value types. Rejections are reported as [*ValidationError]:
//
//	err := s.Add("Bad Name!", "v", header.Replace)
//	errors.Is(err, header.ErrInvalidName) // true
//
// # Sinks
//
// A [Sink] passed with [StoreOptions] is notified after each committed
// mutation. It mirrors the store into an external destination, such as the
// header section of an outbound response, without coupling the store to it.
//
// # Sources
//
// [FromFields], [FromMap] and [FromEnviron] build a store from an external
// header source by running each entry through [Store.Add].
package header
