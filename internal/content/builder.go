package content

import (
	"fmt"
	"strconv"

	"scopedraft/internal/rollup"
	"scopedraft/pkg/types/proposal"
)

// Table header labels for the per-scope pricing table.
var pricingHeader = []string{"TASK", "ROLE", "HOURS", "RATE", "TOTAL"}

// Builder turns a work breakdown into a content node tree. It is pure and
// deterministic: the same breakdown always yields a structurally identical
// tree, and malformed numeric fields coerce rather than fail.
type Builder struct {
	formatter *rollup.Formatter
}

// NewBuilder creates a builder. A nil formatter falls back to the default
// English-locale currency formatter.
func NewBuilder(formatter *rollup.Formatter) *Builder {
	if formatter == nil {
		formatter = rollup.NewFormatter("en")
	}
	return &Builder{formatter: formatter}
}

// Build produces the full proposal tree in fixed order: title and client
// line, each scope section in input order, the financial summary, then the
// optional overview and budget-notes sections.
func (b *Builder) Build(w *proposal.WorkBreakdown) []Node {
	summary := rollup.Compute(w.Scopes, w.DiscountPercent)

	nodes := []Node{
		Heading(1, Text(w.ProjectTitle)),
		Paragraph(Text("Prepared for "), BoldText(w.ClientName)),
	}

	for i, scope := range w.Scopes {
		nodes = append(nodes, b.scopeNodes(i, scope, summary.ScopeTotals[i])...)
		if i < len(w.Scopes)-1 {
			nodes = append(nodes, HorizontalRule())
		}
	}

	nodes = append(nodes, b.summaryNodes(w.DiscountPercent, summary)...)

	if w.ProjectOverview != "" {
		nodes = append(nodes,
			Heading(2, Text("Project Overview")),
			Paragraph(Text(w.ProjectOverview)))
	}
	if w.BudgetNotes != "" {
		nodes = append(nodes,
			Heading(2, Text("Budget Notes")),
			Paragraph(Text(w.BudgetNotes)))
	}

	return nodes
}

// scopeNodes renders one scope section in fixed order: heading, italic
// description, deliverables, pricing, assumptions. The description paragraph
// is emitted even when empty so the section shape never varies. A scope
// without roles emits no pricing table and no scope-total line.
func (b *Builder) scopeNodes(index int, scope proposal.Scope, total float64) []Node {
	nodes := []Node{
		Heading(2, Text(fmt.Sprintf("Scope %d: %s", index+1, scope.Title))),
		Paragraph(ItalicText(scope.Description)),
	}
	if len(scope.Deliverables) > 0 {
		nodes = append(nodes, BulletList(scope.Deliverables))
	}
	if len(scope.Roles) > 0 {
		nodes = append(nodes, b.pricingTable(scope.Roles))
		nodes = append(nodes, Paragraph(BoldText("Scope Total: "+b.money(total))))
	}
	if len(scope.Assumptions) > 0 {
		nodes = append(nodes, BulletList(scope.Assumptions))
	}
	return nodes
}

func (b *Builder) pricingTable(roles []proposal.RoleLine) Node {
	rows := make([][]string, 0, len(roles))
	for _, line := range roles {
		hours := rollup.ToNumber(line.Hours)
		rate := rollup.ToNumber(line.Rate)
		rows = append(rows, []string{
			line.Task,
			line.Role,
			strconv.FormatFloat(hours, 'f', -1, 64),
			b.money(rate),
			b.money(hours * rate),
		})
	}
	return Table(pricingHeader, rows)
}

// summaryNodes renders the trailing financial summary. The discount line
// appears only when a discount is actually in effect; subtotal, tax, and
// grand total are unconditional.
func (b *Builder) summaryNodes(discountPercent float64, summary rollup.Summary) []Node {
	nodes := []Node{
		Heading(2, Text("Financial Summary")),
		Paragraph(Text("Subtotal: " + b.money(summary.Subtotal))),
	}
	if discountPercent > 0 {
		label := fmt.Sprintf("Discount (%s%%): -%s",
			strconv.FormatFloat(discountPercent, 'f', -1, 64),
			b.money(summary.DiscountAmount))
		nodes = append(nodes, Paragraph(Text(label)))
	}
	nodes = append(nodes,
		Paragraph(Text("Tax (10%): "+b.money(summary.Tax))),
		Paragraph(BoldText("Grand Total: "+b.money(summary.GrandTotal))))
	return nodes
}

func (b *Builder) money(n float64) string {
	return "$" + b.formatter.Currency(n)
}
