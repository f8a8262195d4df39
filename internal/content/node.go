// Package content models rich document content as a typed node tree and
// builds proposal trees from a work breakdown. Trees are plain values: the
// builder produces them, the assembler hands them to the live document, and
// nothing mutates them in between.
package content

// NodeType discriminates the content node union.
type NodeType string

const (
	NodeHeading         NodeType = "heading"
	NodeParagraph       NodeType = "paragraph"
	NodeBulletList      NodeType = "bulletList"
	NodeListItem        NodeType = "listItem"
	NodeTable           NodeType = "table"
	NodeTableRow        NodeType = "tableRow"
	NodeTableHeaderCell NodeType = "tableHeaderCell"
	NodeTableCell       NodeType = "tableCell"
	NodeHorizontalRule  NodeType = "horizontalRule"
	NodeText            NodeType = "text"
)

// MarkType is an inline formatting mark on a text node.
type MarkType string

const (
	MarkBold   MarkType = "bold"
	MarkItalic MarkType = "italic"
)

// Mark is a single inline mark.
type Mark struct {
	Type MarkType `json:"type"`
}

// Node is one node of the content tree. Block nodes carry children in
// Content; text nodes carry Text plus optional Marks; Attrs holds
// node-specific attributes such as heading level.
type Node struct {
	Type    NodeType       `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Text builds a plain inline text node.
func Text(s string) Node {
	return Node{Type: NodeText, Text: s}
}

// BoldText builds an inline text node with a bold mark.
func BoldText(s string) Node {
	return Node{Type: NodeText, Text: s, Marks: []Mark{{Type: MarkBold}}}
}

// ItalicText builds an inline text node with an italic mark.
func ItalicText(s string) Node {
	return Node{Type: NodeText, Text: s, Marks: []Mark{{Type: MarkItalic}}}
}

// Heading builds a heading node at the given level.
func Heading(level int, inline ...Node) Node {
	return Node{
		Type:    NodeHeading,
		Attrs:   map[string]any{"level": level},
		Content: inline,
	}
}

// Paragraph builds a paragraph from inline nodes.
func Paragraph(inline ...Node) Node {
	return Node{Type: NodeParagraph, Content: inline}
}

// BulletList builds a bullet list with one paragraph list item per entry.
func BulletList(items []string) Node {
	list := Node{Type: NodeBulletList, Content: make([]Node, 0, len(items))}
	for _, item := range items {
		list.Content = append(list.Content, Node{
			Type:    NodeListItem,
			Content: []Node{Paragraph(Text(item))},
		})
	}
	return list
}

// Table builds a table with a header row followed by one row per entry.
func Table(header []string, rows [][]string) Node {
	table := Node{Type: NodeTable, Content: make([]Node, 0, len(rows)+1)}

	headerRow := Node{Type: NodeTableRow, Content: make([]Node, 0, len(header))}
	for _, h := range header {
		headerRow.Content = append(headerRow.Content, Node{
			Type:    NodeTableHeaderCell,
			Content: []Node{Paragraph(Text(h))},
		})
	}
	table.Content = append(table.Content, headerRow)

	for _, cells := range rows {
		row := Node{Type: NodeTableRow, Content: make([]Node, 0, len(cells))}
		for _, cell := range cells {
			row.Content = append(row.Content, Node{
				Type:    NodeTableCell,
				Content: []Node{Paragraph(Text(cell))},
			})
		}
		table.Content = append(table.Content, row)
	}
	return table
}

// HorizontalRule builds a horizontal rule node.
func HorizontalRule() Node {
	return Node{Type: NodeHorizontalRule}
}
