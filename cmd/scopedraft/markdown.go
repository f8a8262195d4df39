package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// renderMarkdownPreview renders markdown to styled terminal output, wrapping
// to the current terminal width.
func renderMarkdownPreview(markdown string) (string, error) {
	termWidth := 80
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width - 4
		if termWidth > 120 {
			termWidth = 120
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(termWidth),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	return renderer.Render(markdown)
}
