package plugin

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/aymerick/douceur/parser"

	"github.com/lukiwiki/wikitext/engine/sanitize"
)

// Builtins returns a registry preloaded with the standard handlers:
// br, icon, color and code. Callers may add their own on top.
func Builtins() *Registry {
	r := New()
	r.Register("br", brHandler)
	r.Register("icon", iconHandler)
	r.Register("color", colorHandler)
	r.Register("code", codeHandler)
	return r
}

func brHandler(args, body string) (string, error) {
	return "<br>", nil
}

func iconHandler(args, body string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", fmt.Errorf("icon: missing icon name")
	}
	return fmt.Sprintf(`<i class="icon icon-%s"></i>`, sanitize.Escape(name)), nil
}

// colorHandler wraps its content in a colored span. The color value is
// validated by running the declaration through a CSS parser, so only
// syntactically sound values reach the style attribute.
func colorHandler(args, body string) (string, error) {
	value := strings.TrimSpace(args)
	if value == "" {
		return "", fmt.Errorf("color: missing color value")
	}
	decls, err := parser.ParseDeclarations("color: " + value)
	if err != nil || len(decls) != 1 {
		return "", fmt.Errorf("color: invalid value %q", value)
	}
	return fmt.Sprintf(`<span style="color: %s">%s</span>`,
		sanitize.Escape(value), sanitize.Escape(body)), nil
}

// codeHandler highlights its body as source code. The language comes from
// the first argument; unknown languages fall back to plain tokens.
func codeHandler(args, body string) (string, error) {
	lang := strings.TrimSpace(args)
	if i := strings.IndexByte(lang, ','); i >= 0 {
		lang = strings.TrimSpace(lang[:i])
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	iterator, err := lexer.Tokenise(nil, body)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}
