package editor

import (
	"strings"

	"scopedraft/internal/content"
)

// ExportMarkdown renders the document's node tree as Markdown.
func (d *Document) ExportMarkdown() string {
	return ExportMarkdown(d.Nodes())
}

// ExportMarkdown renders a node tree as Markdown. It covers exactly the node
// types the builder emits; anything else renders as its inline text.
func ExportMarkdown(nodes []content.Node) string {
	var b strings.Builder
	for _, node := range nodes {
		writeMarkdownBlock(&b, node)
	}
	return b.String()
}

func writeMarkdownBlock(b *strings.Builder, node content.Node) {
	switch node.Type {
	case content.NodeHeading:
		b.WriteString(strings.Repeat("#", headingLevel(node)))
		b.WriteString(" ")
		b.WriteString(inlineMarkdown(node))
		b.WriteString("\n\n")
	case content.NodeParagraph:
		b.WriteString(inlineMarkdown(node))
		b.WriteString("\n\n")
	case content.NodeBulletList:
		for _, item := range node.Content {
			b.WriteString("- ")
			b.WriteString(inlineMarkdown(item))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	case content.NodeTable:
		writeMarkdownTable(b, node)
	case content.NodeHorizontalRule:
		b.WriteString("---\n\n")
	default:
		if text := inlineMarkdown(node); text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}
}

func writeMarkdownTable(b *strings.Builder, table content.Node) {
	for i, row := range table.Content {
		if row.Type != content.NodeTableRow {
			continue
		}
		cells := make([]string, 0, len(row.Content))
		for _, cell := range row.Content {
			cells = append(cells, inlineMarkdown(cell))
		}
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
		if i == 0 {
			b.WriteString("|")
			b.WriteString(strings.Repeat(" --- |", len(cells)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

// inlineMarkdown flattens a node's inline content, applying bold and italic
// marks.
func inlineMarkdown(node content.Node) string {
	if node.Type == content.NodeText {
		text := node.Text
		for _, mark := range node.Marks {
			switch mark.Type {
			case content.MarkBold:
				text = "**" + text + "**"
			case content.MarkItalic:
				text = "*" + text + "*"
			}
		}
		return text
	}
	var b strings.Builder
	for _, child := range node.Content {
		b.WriteString(inlineMarkdown(child))
	}
	return b.String()
}
