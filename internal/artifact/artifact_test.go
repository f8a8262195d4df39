package artifact

import (
	"strings"
	"testing"

	"scopedraft/internal/plan"
)

func TestRenderDispatch(t *testing.T) {
	t.Run("html passes through untouched", func(t *testing.T) {
		r := Render(&plan.Artifact{Title: "Doc", Kind: plan.KindHTML, Content: "<p>hi</p>"})
		if r.Format != FormatHTML || r.Body != "<p>hi</p>" {
			t.Errorf("rendered = %+v", r)
		}
	})

	t.Run("markdown stays literal", func(t *testing.T) {
		r := Render(&plan.Artifact{Title: "Doc", Kind: plan.KindMarkdown, Content: "# heading"})
		if r.Format != FormatPre {
			t.Errorf("format = %q, want pre", r.Format)
		}
		if r.Body != "# heading" {
			t.Errorf("body = %q, markdown must not be rendered here", r.Body)
		}
	})

	t.Run("unknown kind falls back to raw", func(t *testing.T) {
		r := Render(&plan.Artifact{Title: "Doc", Kind: "component", Content: "<Widget/>"})
		if r.Format != FormatRaw {
			t.Errorf("format = %q, want raw", r.Format)
		}
	})

	t.Run("nil artifact degrades to empty", func(t *testing.T) {
		if r := Render(nil); r.Format != FormatEmpty {
			t.Errorf("format = %q, want empty", r.Format)
		}
	})

	t.Run("empty content degrades to empty", func(t *testing.T) {
		r := Render(&plan.Artifact{Title: "Doc", Kind: plan.KindHTML})
		if r.Format != FormatEmpty {
			t.Errorf("format = %q, want empty", r.Format)
		}
	})
}

func TestHTMLFragment(t *testing.T) {
	t.Run("html kind embeds verbatim", func(t *testing.T) {
		r := Render(&plan.Artifact{Kind: plan.KindHTML, Content: "<script>x</script>"})
		if got := r.HTMLFragment(); got != "<script>x</script>" {
			t.Errorf("fragment = %q", got)
		}
	})

	t.Run("markdown escapes into pre", func(t *testing.T) {
		r := Render(&plan.Artifact{Kind: plan.KindMarkdown, Content: "a < b"})
		got := r.HTMLFragment()
		if !strings.HasPrefix(got, "<pre>") || !strings.Contains(got, "a &lt; b") {
			t.Errorf("fragment = %q", got)
		}
	})

	t.Run("empty renders nothing", func(t *testing.T) {
		if got := Render(nil).HTMLFragment(); got != "" {
			t.Errorf("fragment = %q, want empty", got)
		}
	})
}

func TestRenderTerminal(t *testing.T) {
	out := RenderTerminal(&plan.Artifact{Title: "Preview", Kind: plan.KindMarkdown, Content: "# literal"}, 60)
	if !strings.Contains(out, "# literal") {
		t.Errorf("terminal output lost the literal body:\n%s", out)
	}
	if RenderTerminal(nil, 60) != "" {
		t.Error("nil artifact rendered a frame")
	}
}
