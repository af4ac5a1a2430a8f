package dbg

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
)

// Debug output is off unless BILLIARDS_DEBUG is set in the environment. It is
// meant for watching long preimage runs and orbit truncations, not as a logging
// API.

var Enabled = os.Getenv("BILLIARDS_DEBUG") != ""

var Out io.Writer = os.Stderr

// Print a debug line with a colored tag.
func Printf(tag string, format string, args ...interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Out, "%s %s\n", aurora.Cyan("["+tag+"]"), fmt.Sprintf(format, args...))
}

// Like Printf, but the tag is red.
func Warnf(tag string, format string, args ...interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Out, "%s %s\n", aurora.Red("["+tag+"]"), fmt.Sprintf(format, args...))
}

// Deep dump of a value, for inspecting tables and frontiers.
func Dump(label string, value interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Out, "%s\n%s", aurora.Green(label), spew.Sdump(value))
}
