package block

// Node is a block-level node. Blocks form a tree: list items and quotes may
// nest children of their own kind. The tree is built strictly top-down and
// holds no back-references.
type Node interface {
	blockNode()
}

// Heading is a "#"-marked line, level 1–5. Text is raw inline content;
// marker characters beyond the level cap are folded into it.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of plain lines. Lines hold raw inline content, one
// entry per source line; the renderer joins them with its configured break.
// Color carries an optional "COLOR(name):" prefix.
type Paragraph struct {
	Lines []string
	Color string
}

// List is a run of items of one kind at one nesting depth.
type List struct {
	Ordered bool
	Items   []*Item
}

// Item is a single list item. Children hold nested lists.
type Item struct {
	Depth    int
	Text     string
	Children []Node
}

// Quote is a ">"-marked block. Children hold paragraphs and deeper quotes.
type Quote struct {
	Depth    int
	Children []Node
}

// Table is a run of "|"-delimited rows. Cells hold raw inline content.
type Table struct {
	Rows      [][]string
	HeaderRow bool
}

// Preformatted is a fenced verbatim block. Lines are stored byte-exact and
// receive no inline parsing. Info is the text after the opening fence.
type Preformatted struct {
	Lines []string
	Info  string
}

// Rule is a horizontal rule line.
type Rule struct{}

// PluginBlock is an "@name(args)" invocation, optionally with a "{{…}}"
// body. Interpretation is deferred to a registered handler.
type PluginBlock struct {
	Name string
	Args string
	Body []string
}

func (*Heading) blockNode()      {}
func (*Paragraph) blockNode()    {}
func (*List) blockNode()         {}
func (*Item) blockNode()         {}
func (*Quote) blockNode()        {}
func (*Table) blockNode()        {}
func (*Preformatted) blockNode() {}
func (*Rule) blockNode()         {}
func (*PluginBlock) blockNode()  {}
