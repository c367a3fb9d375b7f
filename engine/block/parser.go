package block

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/lukiwiki/wikitext/core"
	"github.com/lukiwiki/wikitext/core/parameters"
	"github.com/lukiwiki/wikitext/engine/scan"
)

// Parse assembles lines into a sequence of top-level block nodes. It is a
// single forward pass and recovers locally from any malformed structure; the
// only error condition is the guard against adversarial marker runs.
func Parse(lines []scan.Line, regs *parameters.Registers) ([]Node, error) {
	if regs == nil {
		regs = parameters.NewRegisters()
	}
	p := &parser{regs: regs, open: arraystack.New()}
	maxRun := regs.N(parameters.P_MAXMARKERRUN)
	for _, l := range lines {
		if l.Marker > maxRun {
			return nil, core.Error(core.ETOODEEP,
				"marker run of %d at line %d exceeds depth guard", l.Marker, l.No)
		}
		p.feed(l)
	}
	p.closeAll()
	tracer().Debugf("parsed %d lines into %d top-level blocks", len(lines), len(p.result))
	return p.result, nil
}

type contextKind int

const (
	ctxList contextKind = iota
	ctxQuote
)

// context is one open container the parser is still accumulating into.
type context struct {
	kind  contextKind
	depth int
	list  *List
	quote *Quote
}

type parser struct {
	regs   *parameters.Registers
	result []Node
	open   *arraystack.Stack // of *context
	para   *Paragraph        // open paragraph, already attached
	table  *Table            // open table, already attached
	pre    *Preformatted     // open preformatted block
	plug   *PluginBlock      // block plugin collecting a multiline body
}

func (p *parser) feed(l scan.Line) {
	if p.pre != nil {
		if l.Kind == scan.Fence {
			p.result = append(p.result, p.pre)
			p.pre = nil
		} else {
			p.pre.Lines = append(p.pre.Lines, l.Text)
		}
		return
	}
	if p.plug != nil {
		if strings.TrimSpace(l.Text) == "}}" {
			p.result = append(p.result, p.plug)
			p.plug = nil
		} else {
			p.plug.Body = append(p.plug.Body, l.Text)
		}
		return
	}
	switch l.Kind {
	case scan.Blank:
		p.closeAll()
	case scan.Rule:
		p.closeAll()
		p.result = append(p.result, &Rule{})
	case scan.Fence:
		p.closeAll()
		p.pre = &Preformatted{Info: strings.TrimSpace(l.Body()[3:])}
	case scan.Heading:
		p.closeAll()
		p.heading(l)
	case scan.UnorderedItem:
		p.item(l, false)
	case scan.OrderedItem:
		p.item(l, true)
	case scan.Quote:
		p.quoteLine(l)
	case scan.TableRow:
		p.tableRow(l)
	case scan.BlockPlugin:
		p.closeAll()
		p.pluginLine(l)
	default:
		p.plainLine(l)
	}
}

// --- headings --------------------------------------------------------------

func (p *parser) heading(l scan.Line) {
	body := l.Body()
	max := p.regs.N(parameters.P_HEADINGMAXLEVEL)
	level := l.Marker
	text := body[l.Marker:]
	if level > max {
		// fold excess markers into the heading text as literal characters
		text = strings.Repeat("#", level-max) + text
		level = max
	} else {
		text = strings.TrimPrefix(text, " ")
	}
	p.result = append(p.result, &Heading{Level: level, Text: text})
}

// --- lists -----------------------------------------------------------------

func (p *parser) item(l scan.Line, ordered bool) {
	cap := p.regs.N(parameters.P_LISTNESTINGCAP)
	depth := l.Marker
	if depth > cap {
		depth = cap
	}
	if p.topList() == nil && depth > 1 {
		// continuation marker without an open list: demote to paragraph
		tracer().Debugf("orphaned list marker at line %d", l.No)
		p.plainLine(l)
		return
	}
	p.closePara()
	p.closeTable()
	p.closeQuotes()
	text := strings.TrimPrefix(l.Body()[l.Marker:], " ")
	// pop contexts deeper than the marker
	for top := p.topList(); top != nil && top.depth > depth; top = p.topList() {
		p.open.Pop()
	}
	top := p.topList()
	if top != nil && top.depth == depth && top.list.Ordered != ordered {
		// same depth, other kind: start a sibling list
		p.open.Pop()
		top = p.topList()
		top = p.pushList(ordered, depth, top)
	} else if top == nil {
		top = p.pushList(ordered, 1, nil)
	} else if top.depth < depth {
		if depth > top.depth+1 {
			depth = top.depth + 1 // clamp a jump of more than one level
		}
		top = p.pushList(ordered, depth, top)
	}
	top.list.Items = append(top.list.Items, &Item{Depth: top.depth, Text: text})
}

// pushList opens a list context at the given depth, attached under the last
// item of parent (or at top level).
func (p *parser) pushList(ordered bool, depth int, parent *context) *context {
	nl := &List{Ordered: ordered}
	if parent != nil && len(parent.list.Items) > 0 {
		last := parent.list.Items[len(parent.list.Items)-1]
		last.Children = append(last.Children, nl)
	} else {
		p.result = append(p.result, nl)
	}
	ctx := &context{kind: ctxList, depth: depth, list: nl}
	p.open.Push(ctx)
	return ctx
}

// --- quotes ----------------------------------------------------------------

func (p *parser) quoteLine(l scan.Line) {
	p.closeTable()
	p.closeLists()
	cap := p.regs.N(parameters.P_LISTNESTINGCAP)
	depth := l.Marker
	if depth > cap {
		depth = cap
	}
	content := strings.TrimPrefix(l.Body()[l.Marker:], " ")

	for top := p.topQuote(); top != nil && top.depth > depth; top = p.topQuote() {
		p.open.Pop()
		p.para = nil
	}
	top := p.topQuote()
	if top == nil || top.depth < depth {
		start := 1
		if top != nil {
			start = top.depth + 1
		}
		for d := start; d <= depth; d++ {
			q := &Quote{Depth: d}
			if top != nil {
				top.quote.Children = append(top.quote.Children, q)
			} else {
				p.result = append(p.result, q)
			}
			top = &context{kind: ctxQuote, depth: d, quote: q}
			p.open.Push(top)
		}
		p.para = nil
	}
	if content == "" {
		p.para = nil // paragraph break inside the quote
		return
	}
	if p.para == nil {
		p.para = &Paragraph{}
		top.quote.Children = append(top.quote.Children, p.para)
	}
	p.para.Lines = append(p.para.Lines, content)
}

// --- tables ----------------------------------------------------------------

func (p *parser) tableRow(l scan.Line) {
	p.closePara()
	p.closeLists()
	p.closeQuotes()
	if p.table == nil {
		p.table = &Table{HeaderRow: p.regs.B(parameters.P_FIRSTROWHEADER)}
		p.result = append(p.result, p.table)
	}
	p.table.Rows = append(p.table.Rows, cells(l.Body()))
}

func cells(body string) []string {
	row := strings.TrimRight(body, " \t")
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	parts := strings.Split(row, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// --- block plugins ---------------------------------------------------------

func (p *parser) pluginLine(l scan.Line) {
	body := l.Body()
	open := strings.IndexByte(body, '(')
	name := body[1:open]
	close := strings.IndexByte(body[open:], ')')
	if close < 0 {
		p.plainText(body)
		return
	}
	args := body[open+1 : open+close]
	rest := strings.TrimSpace(body[open+close+1:])
	pb := &PluginBlock{Name: name, Args: args}
	switch {
	case rest == "":
		p.result = append(p.result, pb)
	case strings.HasPrefix(rest, "{{"):
		inner := rest[2:]
		if end := strings.LastIndex(inner, "}}"); end >= 0 {
			if body := strings.TrimSpace(inner[:end]); body != "" {
				pb.Body = []string{body}
			}
			p.result = append(p.result, pb)
		} else {
			if inner = strings.TrimSpace(inner); inner != "" {
				pb.Body = append(pb.Body, inner)
			}
			p.plug = pb // collect lines until a closing "}}"
		}
	default:
		// trailing junk after the invocation: keep the line as text
		p.plainText(body)
	}
}

// --- paragraphs ------------------------------------------------------------

func (p *parser) plainLine(l scan.Line) {
	p.closeTable()
	if top := p.topQuote(); top != nil {
		if p.para != nil {
			// lazy continuation of the open quote paragraph
			p.para.Lines = append(p.para.Lines, l.Body())
			return
		}
		p.open.Clear()
	}
	p.closeLists()
	p.plainText(l.Body())
}

func (p *parser) plainText(text string) {
	if p.para == nil {
		para := &Paragraph{}
		if name, rest, ok := colorPrefix(text); ok {
			para.Color = name
			text = rest
		}
		p.result = append(p.result, para)
		p.para = para
		if text == "" {
			return
		}
	}
	p.para.Lines = append(p.para.Lines, text)
}

// colorPrefix matches the "COLOR(name): text" paragraph form.
func colorPrefix(s string) (string, string, bool) {
	if !strings.HasPrefix(s, "COLOR(") {
		return "", s, false
	}
	k := strings.IndexByte(s, ')')
	if k < 0 || k+1 >= len(s) || s[k+1] != ':' {
		return "", s, false
	}
	name := s[len("COLOR("):k]
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", s, false
	}
	return name, strings.TrimPrefix(s[k+2:], " "), true
}

// --- context bookkeeping ---------------------------------------------------

func (p *parser) topCtx() *context {
	if v, ok := p.open.Peek(); ok {
		return v.(*context)
	}
	return nil
}

func (p *parser) topList() *context {
	if c := p.topCtx(); c != nil && c.kind == ctxList {
		return c
	}
	return nil
}

func (p *parser) topQuote() *context {
	if c := p.topCtx(); c != nil && c.kind == ctxQuote {
		return c
	}
	return nil
}

func (p *parser) closePara() { p.para = nil }

func (p *parser) closeTable() { p.table = nil }

func (p *parser) closeLists() {
	if p.topList() != nil {
		p.open.Clear()
	}
}

func (p *parser) closeQuotes() {
	if p.topQuote() != nil {
		p.open.Clear()
		p.para = nil
	}
}

// closeAll pops every open context. End of input and blank lines arrive
// here; unterminated fences and plugin bodies auto-close.
func (p *parser) closeAll() {
	if p.pre != nil {
		p.result = append(p.result, p.pre)
		p.pre = nil
	}
	if p.plug != nil {
		p.result = append(p.result, p.plug)
		p.plug = nil
	}
	p.closePara()
	p.closeTable()
	p.open.Clear()
}
