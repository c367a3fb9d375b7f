/*
Package render serializes a block tree to escaped HTML.

Rendering is a pure, stateless tree walk. Text-bearing nodes run through the
inline lexer on the way out, literal text through the sanitizing escaper.
List and quote nesting maps directly to HTML nesting, with no flattening.
Plugin invocations either dispatch to a registered handler, whose output is
trusted verbatim, or degrade to escaped literal text; content is never
dropped.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wiki.render'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.render")
}
