/*
Package inline tokenizes the text of a single line or paragraph into a
sequence of inline nodes: plain text, emphasis spans, links and inline
plugin invocations.

The lexer performs one left-to-right scan. Span markers are paired
multi-character delimiters; matching is greedy-leftmost, with an opening
delimiter seeking the nearest subsequent closer. Unmatched openers degrade
to literal text, so lexing cannot fail and every input character survives
into the node sequence.

Nodes hold a faithful, un-escaped copy of the source text. HTML escaping is
the renderer's job, at emission time.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wiki.inline'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.inline")
}
