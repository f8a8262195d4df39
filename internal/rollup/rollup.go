// Package rollup computes the financial figures for a work breakdown:
// per-role line costs, per-scope totals, discount, tax, and grand total.
//
// All arithmetic runs at full float64 precision; rounding happens only at the
// display boundary (see Formatter). Numeric fields that arrive as free text
// are coerced through ToNumber and never produce an error.
package rollup

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"scopedraft/pkg/types/proposal"
)

// TaxRate is applied to the post-discount subtotal.
const TaxRate = 0.10

// Summary carries every derived figure for one work breakdown. It is a
// transient value; nothing here is persisted.
type Summary struct {
	ScopeTotals    []float64
	Subtotal       float64
	DiscountAmount float64
	Tax            float64
	GrandTotal     float64
}

// ToNumber coerces an upstream value into a finite float64. Strings are
// stripped of everything except digits, '.', and '-' before parsing; anything
// that still fails to parse, or parses to a non-finite value, becomes 0.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case fmt.Stringer:
		return parseNumeric(n.String())
	case string:
		return parseNumeric(n)
	default:
		return 0
	}
}

func parseNumeric(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// LineCost is the billable cost of a single role line.
func LineCost(line proposal.RoleLine) float64 {
	return ToNumber(line.Hours) * ToNumber(line.Rate)
}

// ScopeTotal sums the line costs of one scope. A scope without roles totals 0.
func ScopeTotal(s proposal.Scope) float64 {
	var total float64
	for _, line := range s.Roles {
		total += LineCost(line)
	}
	return total
}

// Compute derives the full financial summary for a set of scopes.
// discountPercent is clamped at nothing: callers validate range upstream, and
// a zero value simply yields a zero discount line.
func Compute(scopes []proposal.Scope, discountPercent float64) Summary {
	totals := make([]float64, len(scopes))
	var subtotal float64
	for i, s := range scopes {
		totals[i] = ScopeTotal(s)
		subtotal += totals[i]
	}

	discount := subtotal * discountPercent / 100
	tax := (subtotal - discount) * TaxRate

	return Summary{
		ScopeTotals:    totals,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Tax:            tax,
		GrandTotal:     subtotal - discount + tax,
	}
}
