package plugin

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLookupOnNilRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	var r *Registry
	if _, ok := r.Lookup("br"); ok {
		t.Error("nil registry should not resolve handlers")
	}
}

func TestRegisterAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	r := New()
	r.Register("hello", func(args, body string) (string, error) {
		return "hi " + args, nil
	})
	h, ok := r.Lookup("hello")
	if !ok {
		t.Fatal("handler not found after Register")
	}
	out, err := h("world", "")
	if err != nil || out != "hi world" {
		t.Errorf("handler returned %q, %v", out, err)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("unregistered name resolved")
	}
}

func TestRegisterReplaces(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	r := New()
	r.Register("x", func(args, body string) (string, error) { return "one", nil })
	r.Register("x", func(args, body string) (string, error) { return "two", nil })
	h, _ := r.Lookup("x")
	if out, _ := h("", ""); out != "two" {
		t.Errorf("got %q, want replacement handler", out)
	}
}

func TestBrHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, ok := Builtins().Lookup("br")
	if !ok {
		t.Fatal("br not in builtins")
	}
	out, err := h("", "")
	if err != nil || out != "<br>" {
		t.Errorf("got %q, %v", out, err)
	}
}

func TestIconHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, _ := Builtins().Lookup("icon")
	out, err := h("mdi-pencil", "")
	if err != nil {
		t.Fatal(err)
	}
	if out != `<i class="icon icon-mdi-pencil"></i>` {
		t.Errorf("got %q", out)
	}
	if _, err := h("", ""); err == nil {
		t.Error("missing icon name should error")
	}
}

func TestIconHandlerEscapesName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, _ := Builtins().Lookup("icon")
	out, err := h(`"><script>`, "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw markup leaked: %q", out)
	}
}

func TestColorHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, _ := Builtins().Lookup("color")
	out, err := h("crimson", "warning")
	if err != nil {
		t.Fatal(err)
	}
	if out != `<span style="color: crimson">warning</span>` {
		t.Errorf("got %q", out)
	}
}

func TestColorHandlerRejectsBadValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, _ := Builtins().Lookup("color")
	for _, bad := range []string{"", "red; background: url(x)"} {
		if _, err := h(bad, "text"); err == nil {
			t.Errorf("value %q should be rejected", bad)
		}
	}
}

func TestCodeHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, _ := Builtins().Lookup("code")
	out, err := h("go", "package main")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<pre") {
		t.Errorf("no preformatted wrapper in %q", out)
	}
	if !strings.Contains(out, "package") {
		t.Errorf("source text missing from %q", out)
	}
}

func TestCodeHandlerUnknownLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wiki.plugin")
	defer teardown()
	//
	h, _ := Builtins().Lookup("code")
	out, err := h("no-such-language", "plain text")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "plain text") {
		t.Errorf("fallback lexer lost content: %q", out)
	}
}
