/*
Package wikitext converts LukiWiki markup into sanitized HTML.

The engine is synchronous and side-effect free: every call to Parse builds
its own scanner, block parser and renderer, and returns a freshly owned
result. There is no state between calls, so concurrent callers need no
locking.

	html, err := wikitext.Parse("# Hello\n\nThis is **bold** text.")

Markup errors never fail a parse; malformed constructs degrade to literal
text. The only error conditions are the guards against oversized input,
adversarial nesting and invalid encoding.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package wikitext

import (
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"

	"github.com/lukiwiki/wikitext/core"
	"github.com/lukiwiki/wikitext/core/parameters"
	"github.com/lukiwiki/wikitext/engine/block"
	"github.com/lukiwiki/wikitext/engine/plugin"
	"github.com/lukiwiki/wikitext/engine/render"
	"github.com/lukiwiki/wikitext/engine/scan"
	"github.com/lukiwiki/wikitext/input/frontmatter"
)

// tracer traces with key 'wiki.engine'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.engine")
}

// BreakMode selects how paragraph continuation lines render.
type BreakMode int

const (
	HardBreaks BreakMode = iota // continuation lines become <br>
	SoftSpaces                  // continuation lines become a space
)

// Option configures a single parse call.
type Option func(*settings)

type settings struct {
	regs    *parameters.Registers
	plugins *plugin.Registry
}

// FirstRowIsHeader controls whether a table's first row renders inside a
// header section. Default true.
func FirstRowIsHeader(b bool) Option {
	return func(s *settings) { s.regs.Push(parameters.P_FIRSTROWHEADER, b) }
}

// HeadingMaxLevel clamps heading levels; excess marker characters fold into
// the heading text. Default 5.
func HeadingMaxLevel(n int) Option {
	return func(s *settings) { s.regs.Push(parameters.P_HEADINGMAXLEVEL, n) }
}

// ListNestingCap clamps list and quote nesting depth. Default 16.
func ListNestingCap(n int) Option {
	return func(s *settings) { s.regs.Push(parameters.P_LISTNESTINGCAP, n) }
}

// LineBreaks selects the rendering of paragraph continuation lines.
// Default HardBreaks.
func LineBreaks(mode BreakMode) Option {
	return func(s *settings) {
		m := parameters.BreakHardBR
		if mode == SoftSpaces {
			m = parameters.BreakSoftSpace
		}
		s.regs.Push(parameters.P_LINEBREAKMODE, m)
	}
}

// MaxInputSize sets the protective input size limit in bytes.
// Default 1 MiB.
func MaxInputSize(n int) Option {
	return func(s *settings) { s.regs.Push(parameters.P_MAXINPUTSIZE, n) }
}

// WithPlugins installs a plugin-handler registry for this call. Without
// one, plugin invocations render as escaped literal text.
func WithPlugins(r *plugin.Registry) Option {
	return func(s *settings) { s.plugins = r }
}

// Result is the outcome of ParseWithFrontmatter.
type Result struct {
	HTML        string
	Frontmatter frontmatter.Matter
}

// Parse converts wiki markup to HTML. Frontmatter, if present, is removed
// from the output.
func Parse(input string, opts ...Option) (string, error) {
	res, err := ParseWithFrontmatter(input, opts...)
	return res.HTML, err
}

// ParseWithFrontmatter converts wiki markup to HTML and returns extracted
// frontmatter fields alongside.
func ParseWithFrontmatter(input string, opts ...Option) (Result, error) {
	cfg := &settings{regs: parameters.NewRegisters()}
	for _, opt := range opts {
		opt(cfg)
	}
	if max := cfg.regs.N(parameters.P_MAXINPUTSIZE); len(input) > max {
		tracer().Errorf("input of %d bytes exceeds size guard", len(input))
		return Result{}, core.Error(core.ETOOLARGE,
			"input of %d bytes exceeds limit of %d", len(input), max)
	}
	if !utf8.ValidString(input) {
		return Result{}, core.Error(core.EENCODING, "input is not valid UTF-8")
	}
	matter, content := frontmatter.Extract(input)
	content = norm.NFC.String(content)

	lines := scan.Scan(content)
	doc, err := block.Parse(lines, cfg.regs)
	if err != nil {
		return Result{}, err
	}
	html := render.New(cfg.regs, cfg.plugins).Render(doc)
	return Result{HTML: html, Frontmatter: matter}, nil
}
