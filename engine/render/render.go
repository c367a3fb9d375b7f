package render

import (
	"fmt"
	"strings"

	"github.com/lukiwiki/wikitext/core/parameters"
	"github.com/lukiwiki/wikitext/engine/block"
	"github.com/lukiwiki/wikitext/engine/inline"
	"github.com/lukiwiki/wikitext/engine/plugin"
	"github.com/lukiwiki/wikitext/engine/sanitize"
)

// Renderer walks a block tree and emits HTML. It holds configuration only;
// rendering the same tree twice yields byte-identical output.
type Renderer struct {
	regs    *parameters.Registers
	plugins *plugin.Registry // may be nil
}

func New(regs *parameters.Registers, plugins *plugin.Registry) *Renderer {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	return &Renderer{regs: regs, plugins: plugins}
}

// Render serializes the document. Top-level blocks are newline-separated.
func (r *Renderer) Render(doc []block.Node) string {
	var sb strings.Builder
	for _, n := range doc {
		r.renderBlock(&sb, n)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) renderBlock(sb *strings.Builder, n block.Node) {
	switch b := n.(type) {
	case *block.Heading:
		fmt.Fprintf(sb, "<h%d>", b.Level)
		r.renderInline(sb, inline.Parse(b.Text))
		fmt.Fprintf(sb, "</h%d>", b.Level)
	case *block.Paragraph:
		if b.Color != "" {
			fmt.Fprintf(sb, `<p class="text-%s">`, sanitize.Escape(b.Color))
		} else {
			sb.WriteString("<p>")
		}
		r.renderInline(sb, inline.ParseLines(b.Lines))
		sb.WriteString("</p>")
	case *block.List:
		r.renderList(sb, b)
	case *block.Quote:
		sb.WriteString("<blockquote>")
		for _, c := range b.Children {
			r.renderBlock(sb, c)
		}
		sb.WriteString("</blockquote>")
	case *block.Table:
		r.renderTable(sb, b)
	case *block.Preformatted:
		if b.Info != "" {
			fmt.Fprintf(sb, `<pre><code class="language-%s">`, sanitize.Escape(b.Info))
		} else {
			sb.WriteString("<pre><code>")
		}
		for _, ln := range b.Lines {
			sb.WriteString(sanitize.Escape(ln))
			sb.WriteByte('\n')
		}
		sb.WriteString("</code></pre>")
	case *block.Rule:
		sb.WriteString("<hr>")
	case *block.PluginBlock:
		r.renderBlockPlugin(sb, b)
	default:
		tracer().Errorf("renderer got unknown block node %T", n)
	}
}

func (r *Renderer) renderList(sb *strings.Builder, l *block.List) {
	tag := "ul"
	if l.Ordered {
		tag = "ol"
	}
	fmt.Fprintf(sb, "<%s>", tag)
	for _, it := range l.Items {
		sb.WriteString("<li>")
		r.renderInline(sb, inline.Parse(it.Text))
		for _, c := range it.Children {
			r.renderBlock(sb, c)
		}
		sb.WriteString("</li>")
	}
	fmt.Fprintf(sb, "</%s>", tag)
}

func (r *Renderer) renderTable(sb *strings.Builder, t *block.Table) {
	sb.WriteString("<table>")
	rows := t.Rows
	if t.HeaderRow && len(rows) > 0 {
		sb.WriteString("<thead><tr>")
		for _, c := range rows[0] {
			sb.WriteString("<th>")
			r.renderInline(sb, inline.Parse(c))
			sb.WriteString("</th>")
		}
		sb.WriteString("</tr></thead>")
		rows = rows[1:]
	}
	if len(rows) > 0 {
		sb.WriteString("<tbody>")
		for _, row := range rows {
			sb.WriteString("<tr>")
			for _, c := range row {
				sb.WriteString("<td>")
				r.renderInline(sb, inline.Parse(c))
				sb.WriteString("</td>")
			}
			sb.WriteString("</tr>")
		}
		sb.WriteString("</tbody>")
	}
	sb.WriteString("</table>")
}

func (r *Renderer) renderBlockPlugin(sb *strings.Builder, b *block.PluginBlock) {
	body := strings.Join(b.Body, "\n")
	if h, ok := r.plugins.Lookup(b.Name); ok {
		out, err := h(b.Args, body)
		if err == nil {
			sb.WriteString(out)
			return
		}
		tracer().Errorf("block plugin %q failed: %v", b.Name, err)
	}
	// no handler: the invocation renders as escaped literal text
	inv := fmt.Sprintf("@%s(%s)", b.Name, b.Args)
	if body != "" {
		inv += "{{" + body + "}}"
	}
	sb.WriteString("<p>")
	sb.WriteString(sanitize.Escape(inv))
	sb.WriteString("</p>")
}

func (r *Renderer) renderInline(sb *strings.Builder, nodes []inline.Node) {
	for _, n := range nodes {
		switch t := n.(type) {
		case *inline.Text:
			sb.WriteString(sanitize.Escape(t.Content))
		case *inline.Strong:
			sb.WriteString("<strong>")
			r.renderInline(sb, t.Children)
			sb.WriteString("</strong>")
		case *inline.Emph:
			sb.WriteString("<em>")
			r.renderInline(sb, t.Children)
			sb.WriteString("</em>")
		case *inline.Strike:
			sb.WriteString("<del>")
			r.renderInline(sb, t.Children)
			sb.WriteString("</del>")
		case *inline.Link:
			fmt.Fprintf(sb, `<a href="%s">`, sanitize.Escape(t.Target))
			r.renderInline(sb, t.Children)
			sb.WriteString("</a>")
		case *inline.Plugin:
			r.renderInlinePlugin(sb, t)
		case *inline.LineBreak:
			if r.regs.N(parameters.P_LINEBREAKMODE) == parameters.BreakSoftSpace {
				sb.WriteByte(' ')
			} else {
				sb.WriteString("<br>")
			}
		default:
			tracer().Errorf("renderer got unknown inline node %T", n)
		}
	}
}

func (r *Renderer) renderInlinePlugin(sb *strings.Builder, t *inline.Plugin) {
	if h, ok := r.plugins.Lookup(t.Name); ok {
		out, err := h(t.Args, t.Raw)
		if err == nil {
			sb.WriteString(out)
			return
		}
		tracer().Errorf("inline plugin %q failed: %v", t.Name, err)
	}
	sb.WriteString(sanitize.Escape(literalInvocation(t)))
}

// literalInvocation reconstructs the source form of an inline plugin.
func literalInvocation(t *inline.Plugin) string {
	if t.Args == "" && t.Raw == "" {
		return "&" + t.Name + ";"
	}
	if t.Raw == "" {
		return fmt.Sprintf("&%s(%s);", t.Name, t.Args)
	}
	return fmt.Sprintf("&%s(%s){%s};", t.Name, t.Args, t.Raw)
}
