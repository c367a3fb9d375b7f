/*
Package block assembles classified lines into a tree of block nodes.

The parser is the one genuinely stateful stage of the pipeline. It runs a
single forward pass over the line sequence and keeps an explicit stack of
open container contexts, the list or quote levels it is still accumulating
into. Each line's marker classification and marker depth select exactly one
transition: deeper markers push nested contexts, shallower markers pop until
depths match, a blank line closes the open paragraph and all containers.

Malformed structure never fails the parse. Orphaned continuation markers
demote to paragraph text, unterminated fences auto-close at end of input,
and nesting beyond the configured cap clamps instead of growing. The only
error the parser reports is the guard against adversarial marker runs.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package block

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wiki.block'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.block")
}
