// Package util provides string helpers shared by the module packages.
package util

import (
	"strings"
	"sync"
)

// LCaseASCII lower-cases the ASCII letters of s and leaves every other byte as is.
func LCaseASCII[T ~string](s T) T {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			return T(lcaseASCIIFrom(string(s), i))
		}
	}
	return s
}

func lcaseASCIIFrom(s string, i int) string {
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// UCaseASCII upper-cases the ASCII letters of s and leaves every other byte as is.
func UCaseASCII[T ~string](s T) T {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return T(b)
}

// Whitespace trimmed from header values: SP, HTAB, LF, CR, NUL and VT.
const trimSet = " \t\n\r\x00\x0B"

// TrimWS strips leading and trailing whitespace bytes from s.
func TrimWS[T ~string](s T) T { return T(strings.Trim(string(s), trimSet)) }

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(1024)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
