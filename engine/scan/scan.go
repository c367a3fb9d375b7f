package scan

import (
	"strings"
)

// Kind classifies a line by the block marker at its start.
type Kind int

const (
	Plain Kind = iota // no specialized marker
	Blank             // only whitespace
	Heading           // leading run of '#'
	UnorderedItem     // leading run of '-'
	OrderedItem       // leading run of '+'
	Quote             // leading run of '>'
	TableRow          // starts and ends with '|'
	Fence             // preformatted fence "```"
	Rule              // a line of 4+ '-' and nothing else
	BlockPlugin       // "@name(…" block plugin invocation
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Blank:
		return "blank"
	case Heading:
		return "heading"
	case UnorderedItem:
		return "ul-item"
	case OrderedItem:
		return "ol-item"
	case Quote:
		return "quote"
	case TableRow:
		return "table-row"
	case Fence:
		return "fence"
	case Rule:
		return "rule"
	case BlockPlugin:
		return "block-plugin"
	}
	return "unknown"
}

// Line is one logical line of input. Text holds the content without the
// line terminator, byte-exact otherwise. Marker is the length of the leading
// marker run for kinds where repetition encodes depth or level.
type Line struct {
	No     int // 1-based position in the input
	Text   string
	Indent int // number of leading blank characters
	Kind   Kind
	Marker int
}

// Body returns the line's text with leading indentation stripped.
func (l Line) Body() string {
	return l.Text[l.Indent:]
}

// Scan splits input into classified lines. It splits on '\n' and tolerates
// a preceding '\r'. Any input is valid.
func Scan(input string) []Line {
	var lines []Line
	s := input
	no := 0
	for len(s) > 0 {
		no++
		var text string
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			text, s = s[:i], s[i+1:]
		} else {
			text, s = s, ""
		}
		text = strings.TrimSuffix(text, "\r")
		lines = append(lines, classify(no, text))
	}
	tracer().Debugf("scanned %d lines", len(lines))
	return lines
}

func classify(no int, text string) Line {
	l := Line{No: no, Text: text, Kind: Plain}
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	l.Indent = i
	body := text[i:]
	if body == "" {
		l.Kind = Blank
		return l
	}
	switch body[0] {
	case '#':
		l.Kind = Heading
		l.Marker = runLength(body, '#')
	case '-':
		n := runLength(body, '-')
		if n >= 4 && n == len(body) {
			l.Kind = Rule
		} else {
			l.Kind = UnorderedItem
			l.Marker = n
		}
	case '+':
		l.Kind = OrderedItem
		l.Marker = runLength(body, '+')
	case '>':
		l.Kind = Quote
		l.Marker = runLength(body, '>')
	case '|':
		if isTableRow(body) {
			l.Kind = TableRow
		}
	case '`':
		if strings.HasPrefix(body, "```") {
			l.Kind = Fence
		}
	case '@':
		if isBlockPlugin(body) {
			l.Kind = BlockPlugin
		}
	}
	return l
}

func runLength(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}

// isTableRow requires the line to start and end with '|' (trailing blanks
// tolerated) and to contain at least one cell position.
func isTableRow(body string) bool {
	trimmed := strings.TrimRight(body, " \t")
	return len(trimmed) >= 2 && trimmed[len(trimmed)-1] == '|'
}

// isBlockPlugin matches "@name(" with a non-empty plugin name. A bare @word
// without parentheses is ordinary text.
func isBlockPlugin(body string) bool {
	rest := body[1:]
	j := 0
	for j < len(rest) && isNameChar(rest[j]) {
		j++
	}
	return j > 0 && j < len(rest) && rest[j] == '('
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}
