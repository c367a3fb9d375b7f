/*
Package plugin provides the handler registry for wiki plugin invocations.

Plugin dispatch is a capability map from plugin name to a rendering
function. New plugin kinds are added by registration; neither the parser nor
the renderer knows any plugin semantics. Where no handler is registered the
renderer falls back to escaped literal text, so content is never dropped.

Handlers are trusted code: their output is embedded into the rendered HTML
verbatim.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package plugin

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'wiki.plugin'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.plugin")
}

// Handler renders one plugin invocation to an HTML fragment. args is the
// raw argument string between the parentheses, body the raw content text
// (empty for body-less invocations). A returned error makes the renderer
// fall back to escaped literal output.
type Handler func(args, body string) (string, error)

// Registry maps plugin names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register installs h for name, replacing any previous handler.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
	tracer().Debugf("registered plugin handler %q", name)
}

// Lookup finds the handler for name. It is safe to call on a nil registry.
func (r *Registry) Lookup(name string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[name]
	return h, ok
}
