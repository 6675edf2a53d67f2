package header

import (
	"strings"

	"github.com/ghettovoice/msghdr/internal/util"
)

// Normalize returns the lookup key of the header name.
// Underscores are replaced with hyphens and ASCII letters are lower-cased, so
// "X_AUTH", "x-auth" and "X-Auth" share the key "x-auth".
// No whitespace is trimmed.
func Normalize[T ~string](name T) string {
	return util.LCaseASCII(DisplayName(string(name)))
}

// DisplayName returns the form of the header name stored for display:
// underscores are replaced with hyphens, the case is preserved.
func DisplayName[T ~string](name T) string {
	return strings.ReplaceAll(string(name), "_", "-")
}

// EqualNames reports whether two header names share the same lookup key.
func EqualNames[T1, T2 ~string](name1 T1, name2 T2) bool {
	return Normalize(name1) == Normalize(name2)
}
