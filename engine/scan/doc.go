/*
Package scan splits raw wiki source into a sequence of classified logical
lines.

Scanning is the first stage of the parsing pipeline. It splits on newline
characters (a preceding carriage return is tolerated and dropped), preserving
line content byte-exactly. Besides splitting, each line gets a derived
classification: the block marker found at its start, if any, together with
the length of the marker run. Classification is purely lexical; structural
decisions are left to the block parser.

Scanning cannot fail. Empty input yields an empty sequence, and a final line
without a terminator is still yielded.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scan

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wiki.scan'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.scan")
}
