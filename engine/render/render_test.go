package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/lukiwiki/wikitext/core/parameters"
	"github.com/lukiwiki/wikitext/engine/block"
	"github.com/lukiwiki/wikitext/engine/plugin"
)

func TestRenderHeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	out := New(nil, nil).Render([]block.Node{&block.Heading{Level: 5, Text: "Title"}})
	if out != "<h5>Title</h5>\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderParagraphBreakModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Paragraph{Lines: []string{"a", "b"}}}
	if out := New(nil, nil).Render(doc); out != "<p>a<br>b</p>\n" {
		t.Errorf("hard breaks: got %q", out)
	}
	regs := parameters.NewRegisters()
	regs.Push(parameters.P_LINEBREAKMODE, parameters.BreakSoftSpace)
	if out := New(regs, nil).Render(doc); out != "<p>a b</p>\n" {
		t.Errorf("soft spaces: got %q", out)
	}
}

func TestRenderColoredParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Paragraph{Lines: []string{"ok"}, Color: "success"}}
	out := New(nil, nil).Render(doc)
	if out != `<p class="text-success">ok</p>`+"\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderEscapesText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Paragraph{Lines: []string{"<script>alert(1)</script>"}}}
	out := New(nil, nil).Render(doc)
	if strings.Contains(out, "<script>") {
		t.Errorf("raw tag leaked: %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("missing escaped tag: %q", out)
	}
}

func TestRenderNestedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	inner := &block.List{Items: []*block.Item{{Depth: 2, Text: "b"}}}
	doc := []block.Node{&block.List{Items: []*block.Item{
		{Depth: 1, Text: "a", Children: []block.Node{inner}},
	}}}
	out := New(nil, nil).Render(doc)
	if out != "<ul><li>a<ul><li>b</li></ul></li></ul>\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderQuote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Quote{Depth: 1, Children: []block.Node{
		&block.Paragraph{Lines: []string{"quoted"}},
	}}}
	out := New(nil, nil).Render(doc)
	if out != "<blockquote><p>quoted</p></blockquote>\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderTableWithHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Table{
		HeaderRow: true,
		Rows:      [][]string{{"a", "b"}, {"c", "d"}},
	}}
	out := New(nil, nil).Render(doc)
	want := "<table><thead><tr><th>a</th><th>b</th></tr></thead>" +
		"<tbody><tr><td>c</td><td>d</td></tr></tbody></table>\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestRenderTableWithoutHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Table{Rows: [][]string{{"a"}}}}
	out := New(nil, nil).Render(doc)
	if out != "<table><tbody><tr><td>a</td></tr></tbody></table>\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderPreformatted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Preformatted{Info: "go", Lines: []string{"a < b"}}}
	out := New(nil, nil).Render(doc)
	want := `<pre><code class="language-go">a &lt; b` + "\n</code></pre>\n"
	if out != want {
		t.Errorf("got %q", out)
	}
}

func TestRenderInlineMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Paragraph{Lines: []string{"**b** ''e'' ~~s~~"}}}
	out := New(nil, nil).Render(doc)
	want := "<p><strong>b</strong> <em>e</em> <del>s</del></p>\n"
	if out != want {
		t.Errorf("got %q", out)
	}
}

func TestRenderLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Paragraph{Lines: []string{"[[Example>https://example.com]]"}}}
	out := New(nil, nil).Render(doc)
	want := `<p><a href="https://example.com">Example</a></p>` + "\n"
	if out != want {
		t.Errorf("got %q", out)
	}
}

func TestPluginFallbackIsEscapedLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.Paragraph{Lines: []string{"&blink(fast){hi};"}}}
	out := New(nil, nil).Render(doc)
	want := "<p>&amp;blink(fast){hi};</p>\n"
	if out != want {
		t.Errorf("got %q", out)
	}
}

func TestPluginHandlerOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	reg := plugin.New()
	reg.Register("blink", func(args, body string) (string, error) {
		return "<span class=\"blink\">" + body + "</span>", nil
	})
	doc := []block.Node{&block.Paragraph{Lines: []string{"&blink(fast){hi};"}}}
	out := New(nil, reg).Render(doc)
	want := `<p><span class="blink">hi</span></p>` + "\n"
	if out != want {
		t.Errorf("got %q", out)
	}
}

func TestPluginHandlerErrorFallsBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	reg := plugin.New()
	reg.Register("bad", func(args, body string) (string, error) {
		return "", errors.New("boom")
	})
	doc := []block.Node{&block.Paragraph{Lines: []string{"&bad;"}}}
	out := New(nil, reg).Render(doc)
	if out != "<p>&amp;bad;</p>\n" {
		t.Errorf("got %q", out)
	}
}

func TestBlockPluginFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{&block.PluginBlock{Name: "toc", Args: ""}}
	out := New(nil, nil).Render(doc)
	if out != "<p>@toc()</p>\n" {
		t.Errorf("got %q", out)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.render")
	defer teardown()
	//
	doc := []block.Node{
		&block.Heading{Level: 2, Text: "h"},
		&block.Paragraph{Lines: []string{"a & b", "c"}},
	}
	r := New(nil, nil)
	if first, second := r.Render(doc), r.Render(doc); first != second {
		t.Errorf("render not byte-identical:\n%q\n%q", first, second)
	}
}
