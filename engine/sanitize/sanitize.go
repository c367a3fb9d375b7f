/*
Package sanitize escapes HTML-significant characters while preserving
standard HTML entities.

Raw HTML input is forbidden in wiki source: every '<', '>' and '"' is
escaped, and every '&' that does not introduce a valid entity becomes
"&amp;". Valid entities, a fixed allowlist of named entities plus decimal
"&#123;" and hexadecimal "&#x7B;" forms, pass through untouched, so authors
can still write "&nbsp;" or "&copy;".

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sanitize

import (
	"strings"
)

// entity length limit, not counting '&' and ';'
const maxEntityLen = 10

// Escape returns s with HTML-significant characters escaped. Valid HTML
// entities are preserved. Escaping is idempotent on its own output for
// entity-free text and total for any input.
func Escape(s string) string {
	if !strings.ContainsAny(s, `<>&"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 32)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '&':
			if entityAt(s[i:]) {
				b.WriteByte('&')
			} else {
				b.WriteString("&amp;")
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// entityAt reports whether s, starting with '&', begins a valid entity.
func entityAt(s string) bool {
	end := strings.IndexByte(s, ';')
	if end < 0 || end-1 > maxEntityLen {
		return false
	}
	return ValidEntity(s[1:end])
}

// ValidEntity validates an entity body (the text between '&' and ';').
// Numeric forms are "#123" and "#x7B"/"#X7B".
func ValidEntity(entity string) bool {
	if entity == "" {
		return false
	}
	if entity[0] == '#' {
		num := entity[1:]
		if num == "" {
			return false
		}
		if num[0] == 'x' || num[0] == 'X' {
			return len(num) > 1 && isAll(num[1:], isHexDigit)
		}
		return isAll(num, isDigit)
	}
	return namedEntities[entity]
}

// Named entities accepted for pass-through. The full HTML list is huge;
// this covers the ones wiki authors actually write.
var namedEntities = map[string]bool{
	"nbsp": true, "lt": true, "gt": true, "amp": true,
	"quot": true, "apos": true, "copy": true, "reg": true,
	"trade": true, "ndash": true, "mdash": true,
	"lsquo": true, "rsquo": true, "ldquo": true, "rdquo": true,
	"hellip": true, "prime": true, "Prime": true,
	"euro": true, "yen": true, "pound": true, "cent": true,
	"times": true, "divide": true, "plusmn": true, "minus": true,
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"Alpha": true, "Beta": true, "Gamma": true, "Delta": true, "Epsilon": true,
}

func isAll(s string, pred func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !pred(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
