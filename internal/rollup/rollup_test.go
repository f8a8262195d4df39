package rollup

import (
	"math"
	"testing"

	"scopedraft/pkg/types/proposal"
)

func TestToNumber(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"plain float", 42.5, 42.5},
		{"int", 7, 7},
		{"nil", nil, 0},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"currency string", "$1,200.50", 1200.5},
		{"negative string", "-50", -50},
		{"hours suffix", "40 hrs", 40},
		{"flex number", proposal.Num(120), 120},
		{"flex text", proposal.FlexNumber("$95/hr"), 95},
		{"double dot", "1.2.3", 0},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"unsupported type", []string{"x"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToNumber(tc.in); got != tc.want {
				t.Errorf("ToNumber(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func scopeWith(lines ...proposal.RoleLine) proposal.Scope {
	return proposal.Scope{ID: "s", Title: "Scope", Roles: lines}
}

func TestCompute(t *testing.T) {
	const epsilon = 1e-9

	almostEqual := func(a, b float64) bool {
		return math.Abs(a-b) < epsilon
	}

	t.Run("no discount", func(t *testing.T) {
		scopes := []proposal.Scope{
			scopeWith(proposal.RoleLine{Task: "Build", Role: "Engineer", Hours: proposal.Num(10), Rate: proposal.Num(100)}),
		}
		summary := Compute(scopes, 0)

		if !almostEqual(summary.Subtotal, 1000) {
			t.Errorf("subtotal = %v, want 1000", summary.Subtotal)
		}
		if !almostEqual(summary.DiscountAmount, 0) {
			t.Errorf("discount = %v, want 0", summary.DiscountAmount)
		}
		if !almostEqual(summary.Tax, 100) {
			t.Errorf("tax = %v, want 100", summary.Tax)
		}
		if !almostEqual(summary.GrandTotal, 1100) {
			t.Errorf("grand total = %v, want 1100", summary.GrandTotal)
		}
	})

	t.Run("ten percent discount", func(t *testing.T) {
		scopes := []proposal.Scope{
			scopeWith(proposal.RoleLine{Task: "Build", Role: "Engineer", Hours: proposal.Num(10), Rate: proposal.Num(100)}),
		}
		summary := Compute(scopes, 10)

		if !almostEqual(summary.DiscountAmount, 100) {
			t.Errorf("discount = %v, want 100", summary.DiscountAmount)
		}
		if !almostEqual(summary.Tax, 90) {
			t.Errorf("tax = %v, want 90", summary.Tax)
		}
		if !almostEqual(summary.GrandTotal, 990) {
			t.Errorf("grand total = %v, want 990", summary.GrandTotal)
		}
	})

	t.Run("subtotal equals sum of scope totals", func(t *testing.T) {
		scopes := []proposal.Scope{
			scopeWith(
				proposal.RoleLine{Hours: proposal.Num(10), Rate: proposal.Num(150)},
				proposal.RoleLine{Hours: proposal.Num(3.5), Rate: proposal.Num(200)},
			),
			scopeWith(proposal.RoleLine{Hours: proposal.FlexNumber("20"), Rate: proposal.FlexNumber("$85.50")}),
			scopeWith(),
		}
		summary := Compute(scopes, 0)

		var sum float64
		for _, total := range summary.ScopeTotals {
			sum += total
		}
		if !almostEqual(summary.Subtotal, sum) {
			t.Errorf("subtotal %v != sum of scope totals %v", summary.Subtotal, sum)
		}
		if summary.ScopeTotals[2] != 0 {
			t.Errorf("empty scope total = %v, want 0", summary.ScopeTotals[2])
		}
		if !almostEqual(summary.GrandTotal, summary.Subtotal-summary.DiscountAmount+summary.Tax) {
			t.Errorf("grand total identity violated: %+v", summary)
		}
	})

	t.Run("malformed numerics coerce to zero", func(t *testing.T) {
		scopes := []proposal.Scope{
			scopeWith(proposal.RoleLine{Hours: proposal.FlexNumber("n/a"), Rate: proposal.FlexNumber("call us")}),
		}
		summary := Compute(scopes, 0)
		if summary.GrandTotal != 0 {
			t.Errorf("grand total = %v, want 0", summary.GrandTotal)
		}
	})
}
