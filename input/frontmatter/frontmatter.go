/*
Package frontmatter extracts a leading YAML frontmatter section from wiki
source.

Frontmatter is delimited by a "---" line at the very start of the input and
a second "---" line; the text between the fences parses as YAML. Absent or
malformed frontmatter is not an error: the input passes through untouched.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package frontmatter

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'wiki.input'.
func tracer() tracing.Trace {
	return tracing.Select("wiki.input")
}

// Matter holds decoded frontmatter fields.
type Matter map[string]interface{}

// Extract splits frontmatter off the input. It returns the decoded fields
// and the remaining content. Without valid frontmatter it returns nil and
// the input unchanged.
func Extract(input string) (Matter, string) {
	first, rest, found := cutLine(input)
	if !found || strings.TrimRight(first, "\r") != "---" {
		return nil, input
	}
	var body strings.Builder
	for {
		line, tail, more := cutLine(rest)
		if strings.TrimRight(line, "\r") == "---" {
			m := Matter{}
			if err := yaml.Unmarshal([]byte(body.String()), &m); err != nil {
				tracer().Infof("frontmatter does not parse as YAML: %v", err)
				return nil, input
			}
			if len(m) == 0 {
				return nil, tail
			}
			return m, tail
		}
		if !more {
			// unterminated frontmatter fence: not frontmatter at all
			return nil, input
		}
		body.WriteString(line)
		body.WriteByte('\n')
		rest = tail
	}
}

// cutLine splits off the first line. found is false when s holds no line
// terminator and the remainder is the final line.
func cutLine(s string) (line, rest string, found bool) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
