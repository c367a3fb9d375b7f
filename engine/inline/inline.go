package inline

// Node is an inline node. Nodes nest through span children only; there are
// no cross-references, so every node sequence is a finite tree.
type Node interface {
	inlineNode()
}

// Text is a run of plain characters, un-escaped.
type Text struct {
	Content string
}

// Strong is a "**…**" span.
type Strong struct {
	Children []Node
}

// Emph is a "''…''" span.
type Emph struct {
	Children []Node
}

// Strike is a "~~…~~" span.
type Strike struct {
	Children []Node
}

// Link is a "[[label>target]]" bracket link or a bare URL auto-link.
// Children hold the visible label; for auto-links and label-less bracket
// links the label is the target itself.
type Link struct {
	Target   string
	Children []Node
}

// Plugin is an "&name(args);" invocation, optionally with "{content}".
// The lexer captures syntax boundaries only; argument semantics belong to a
// registered handler. Raw preserves the content text for handlers, Children
// its inline parse for the fallback rendering.
type Plugin struct {
	Name     string
	Args     string
	Raw      string
	Children []Node
}

// LineBreak separates paragraph continuation lines.
type LineBreak struct{}

func (*Text) inlineNode()      {}
func (*Strong) inlineNode()    {}
func (*Emph) inlineNode()      {}
func (*Strike) inlineNode()    {}
func (*Link) inlineNode()      {}
func (*Plugin) inlineNode()    {}
func (*LineBreak) inlineNode() {}
