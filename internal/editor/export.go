package editor

import (
	"fmt"
	"html"
	"strings"

	"scopedraft/internal/content"
)

// ExportHTML renders the document's node tree as an HTML fragment.
func (d *Document) ExportHTML() string {
	return ExportHTML(d.Nodes())
}

// ExportHTML renders a node tree as an HTML fragment.
func ExportHTML(nodes []content.Node) string {
	var b strings.Builder
	for _, node := range nodes {
		writeNode(&b, node)
	}
	return b.String()
}

func writeNode(b *strings.Builder, node content.Node) {
	switch node.Type {
	case content.NodeHeading:
		level := headingLevel(node)
		fmt.Fprintf(b, "<h%d>", level)
		writeChildren(b, node)
		fmt.Fprintf(b, "</h%d>\n", level)
	case content.NodeParagraph:
		b.WriteString("<p>")
		writeChildren(b, node)
		b.WriteString("</p>\n")
	case content.NodeBulletList:
		b.WriteString("<ul>\n")
		writeChildren(b, node)
		b.WriteString("</ul>\n")
	case content.NodeListItem:
		b.WriteString("<li>")
		writeChildren(b, node)
		b.WriteString("</li>\n")
	case content.NodeTable:
		b.WriteString("<table>\n")
		writeChildren(b, node)
		b.WriteString("</table>\n")
	case content.NodeTableRow:
		b.WriteString("<tr>")
		writeChildren(b, node)
		b.WriteString("</tr>\n")
	case content.NodeTableHeaderCell:
		b.WriteString("<th>")
		writeChildren(b, node)
		b.WriteString("</th>")
	case content.NodeTableCell:
		b.WriteString("<td>")
		writeChildren(b, node)
		b.WriteString("</td>")
	case content.NodeHorizontalRule:
		b.WriteString("<hr>\n")
	case content.NodeText:
		writeText(b, node)
	}
}

func writeChildren(b *strings.Builder, node content.Node) {
	for _, child := range node.Content {
		writeNode(b, child)
	}
}

func writeText(b *strings.Builder, node content.Node) {
	opening, closing := "", ""
	for _, mark := range node.Marks {
		switch mark.Type {
		case content.MarkBold:
			opening += "<strong>"
			closing = "</strong>" + closing
		case content.MarkItalic:
			opening += "<em>"
			closing = "</em>" + closing
		}
	}
	b.WriteString(opening)
	b.WriteString(html.EscapeString(node.Text))
	b.WriteString(closing)
}

func headingLevel(node content.Node) int {
	if node.Attrs == nil {
		return 1
	}
	switch v := node.Attrs["level"].(type) {
	case int:
		if v >= 1 && v <= 6 {
			return v
		}
	case float64:
		if v >= 1 && v <= 6 {
			return int(v)
		}
	}
	return 1
}
