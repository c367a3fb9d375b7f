package inline

import (
	"strings"

	"github.com/npillmayer/uax/segment"

	"github.com/lukiwiki/wikitext/engine/sanitize"
)

// maxSpanDepth caps span nesting. Past the cap, markers stay literal text.
const maxSpanDepth = 32

// Parse tokenizes one line of text into inline nodes. It cannot fail; any
// marker that does not form a complete construct survives as literal text.
func Parse(text string) []Node {
	return parseSpans(text, 0, false)
}

// ParseLines tokenizes paragraph content, joining continuation lines with a
// LineBreak node so that the renderer can choose its break representation.
func ParseLines(lines []string) []Node {
	var nodes []Node
	for i, ln := range lines {
		if i > 0 {
			nodes = append(nodes, &LineBreak{})
		}
		nodes = append(nodes, Parse(ln)...)
	}
	return nodes
}

func parseSpans(s string, depth int, inLink bool) []Node {
	var nodes []Node
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, &Text{Content: lit.String()})
			lit.Reset()
		}
	}
	i := 0
	for i < len(s) {
		if depth < maxSpanDepth {
			if n, length := scanConstruct(s[i:], depth, inLink); n != nil {
				flush()
				nodes = append(nodes, n)
				i += length
				continue
			}
		}
		lit.WriteByte(s[i])
		i++
	}
	flush()
	return nodes
}

// scanConstruct tries to read one non-text construct at the start of s.
// It returns (nil, 0) if s does not begin one.
func scanConstruct(s string, depth int, inLink bool) (Node, int) {
	switch s[0] {
	case '&':
		return scanPlugin(s, depth, inLink)
	case '[':
		if !inLink && strings.HasPrefix(s, "[[") {
			return scanBracketLink(s, depth)
		}
	case '*', '\'', '~':
		if len(s) >= 2 && s[1] == s[0] {
			return scanSpan(s, depth, inLink)
		}
	case 'h':
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			url := autolinkTarget(s)
			return &Link{Target: url, Children: []Node{&Text{Content: url}}}, len(url)
		}
	}
	return nil, 0
}

// scanSpan matches a paired two-character delimiter span. The opener seeks
// the nearest closer; the match must not cross the start of a bracket link.
func scanSpan(s string, depth int, inLink bool) (Node, int) {
	delim := s[:2]
	rest := s[2:]
	close := strings.Index(rest, delim)
	if close <= 0 {
		return nil, 0 // unmatched or empty span: degrade to literal
	}
	if ls := strings.Index(rest, "[["); ls >= 0 && ls < close {
		return nil, 0 // closer lies beyond a link target boundary
	}
	children := parseSpans(rest[:close], depth+1, inLink)
	length := 2 + close + 2
	switch delim {
	case "**":
		return &Strong{Children: children}, length
	case "''":
		return &Emph{Children: children}, length
	case "~~":
		return &Strike{Children: children}, length
	}
	return nil, 0
}

// scanBracketLink matches "[[label>target]]" and "[[target]]".
func scanBracketLink(s string, depth int) (Node, int) {
	end := strings.Index(s[2:], "]]")
	if end < 0 {
		return nil, 0
	}
	inner := s[2 : 2+end]
	if inner == "" {
		return nil, 0
	}
	var label, target string
	if gt := strings.IndexByte(inner, '>'); gt >= 0 {
		label, target = inner[:gt], inner[gt+1:]
	} else {
		target = inner
	}
	if target == "" {
		return nil, 0
	}
	var children []Node
	if label == "" {
		children = []Node{&Text{Content: target}}
	} else {
		children = parseSpans(label, depth+1, true)
	}
	tracer().Debugf("link to %q", target)
	return &Link{Target: target, Children: children}, 2 + end + 2
}

// scanPlugin matches "&name;", "&name(args);" and "&name(args){content};".
// A bare "&name;" that spells a valid HTML entity is left to the escaper.
func scanPlugin(s string, depth int, inLink bool) (Node, int) {
	name := nameRun(s[1:])
	if name == "" {
		return nil, 0
	}
	j := 1 + len(name)
	if j >= len(s) {
		return nil, 0
	}
	if s[j] == ';' {
		if sanitize.ValidEntity(name) {
			return nil, 0
		}
		return &Plugin{Name: name}, j + 1
	}
	if s[j] != '(' {
		return nil, 0
	}
	k := strings.IndexByte(s[j:], ')')
	if k < 0 {
		return nil, 0
	}
	args := s[j+1 : j+k]
	m := j + k + 1
	if m >= len(s) {
		return nil, 0
	}
	if s[m] == ';' {
		return &Plugin{Name: name, Args: args}, m + 1
	}
	if s[m] == '{' {
		e := strings.Index(s[m:], "};")
		if e < 0 {
			return nil, 0
		}
		raw := s[m+1 : m+e]
		pl := &Plugin{Name: name, Args: args, Raw: raw}
		pl.Children = parseSpans(raw, depth+1, inLink)
		return pl, m + e + 2
	}
	return nil, 0
}

// autolinkTarget cuts the URL off the input: the first whitespace-delimited
// segment, further trimmed at a closing bracket.
func autolinkTarget(s string) string {
	seg := segment.NewSegmenter(segment.NewSimpleWordBreaker())
	seg.Init(strings.NewReader(s))
	word := s
	if seg.Next() {
		word = seg.Text()
	}
	if j := strings.IndexAny(word, "]|"); j >= 0 {
		word = word[:j]
	}
	return word
}

func nameRun(s string) string {
	j := 0
	for j < len(s) && isNameChar(s[j]) {
		j++
	}
	return s[:j]
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '-' || c == '_'
}
