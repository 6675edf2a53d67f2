// Command msghdr drives the header store from the command line.
//
// Usage:
//
//	msghdr demo [--json] [--loose] [--log console|dev|none]
//	msghdr env [--json] [--loose] [--log console|dev|none]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Environ).Execute(); err != nil {
		os.Exit(1)
	}
}
