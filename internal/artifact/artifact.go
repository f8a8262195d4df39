// Package artifact renders the single trailing artifact of an assistant turn.
// Dispatch is purely on the artifact kind; rendering never fails, and missing
// or unknown fields degrade to an empty block.
package artifact

import (
	"html"

	"scopedraft/internal/plan"
)

// Format tells the host how to treat the rendered body.
type Format string

const (
	// FormatHTML marks a trusted HTML fragment. No sanitization happens
	// here; upstream owns that.
	FormatHTML Format = "html"
	// FormatPre marks literal preformatted text. Markdown artifacts render
	// this way at this layer, not through a markdown engine.
	FormatPre Format = "pre"
	// FormatRaw marks a raw fallback block for unrecognized kinds.
	FormatRaw Format = "raw"
	// FormatEmpty marks a degenerate artifact with nothing to show.
	FormatEmpty Format = "empty"
)

// Rendered is the render-ready output for one artifact.
type Rendered struct {
	Title  string
	Format Format
	Body   string
}

// Render dispatches on artifact kind. A nil artifact or empty content yields
// an empty block.
func Render(a *plan.Artifact) Rendered {
	if a == nil || a.Content == "" {
		return Rendered{Format: FormatEmpty}
	}
	switch a.Kind {
	case plan.KindHTML:
		return Rendered{Title: a.Title, Format: FormatHTML, Body: a.Content}
	case plan.KindMarkdown:
		return Rendered{Title: a.Title, Format: FormatPre, Body: a.Content}
	default:
		return Rendered{Title: a.Title, Format: FormatRaw, Body: a.Content}
	}
}

// HTMLFragment returns the rendered artifact as an embeddable HTML fragment.
// HTML bodies pass through verbatim; everything else is escaped into a
// preformatted block.
func (r Rendered) HTMLFragment() string {
	switch r.Format {
	case FormatHTML:
		return r.Body
	case FormatPre, FormatRaw:
		return "<pre>" + html.EscapeString(r.Body) + "</pre>"
	default:
		return ""
	}
}
