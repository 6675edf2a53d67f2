// Package grammar implements the RFC 7230 rules used to validate header names and values.
package grammar

import "github.com/ghettovoice/abnf"

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// IsToken reports whether s is an RFC 7230 token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Token([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsFieldValue reports whether s consists of field-value octets only.
// The empty string is a valid field value.
func IsFieldValue[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return true
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := FieldValue([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
