package proposal

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WorkBreakdown is the structured input to document assembly: a client,
// a project title, and one or more billable scopes.
type WorkBreakdown struct {
	ClientName      string  `json:"clientName"`
	ProjectTitle    string  `json:"projectTitle"`
	Scopes          []Scope `json:"scopes"`
	ProjectOverview string  `json:"projectOverview,omitempty"`
	BudgetNotes     string  `json:"budgetNotes,omitempty"`
	DiscountPercent float64 `json:"discountPercent,omitempty"`
}

// Scope is one billable section of a work breakdown.
type Scope struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Roles        []RoleLine `json:"roles"`
	Deliverables []string   `json:"deliverables"`
	Assumptions  []string   `json:"assumptions"`
}

// RoleLine is one row of billable work: a task, a role name, hours, and an
// hourly rate. Hours and rate frequently arrive as free text rather than JSON
// numbers, so they are kept raw until the rollup coercion step.
type RoleLine struct {
	ID    string     `json:"id"`
	Task  string     `json:"task"`
	Role  string     `json:"role"`
	Hours FlexNumber `json:"hours"`
	Rate  FlexNumber `json:"rate"`
}

// FlexNumber holds a numeric field that upstream may deliver as a JSON number
// or as free text ("$1,200.50", "40 hrs"). The raw text is preserved so the
// coercion rule sees exactly what arrived.
type FlexNumber string

// UnmarshalJSON accepts either a JSON string or any other scalar token and
// keeps its textual form.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = FlexNumber(s)
		return nil
	}
	*n = FlexNumber(strings.TrimSpace(string(data)))
	return nil
}

// MarshalJSON emits a JSON number when the raw text parses cleanly, and the
// original string otherwise.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if f, err := strconv.ParseFloat(string(n), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return json.Marshal(f)
	}
	return json.Marshal(string(n))
}

func (n FlexNumber) String() string { return string(n) }

// Num builds a FlexNumber from a plain float, for constructing breakdowns in
// code rather than from JSON.
func Num(f float64) FlexNumber {
	return FlexNumber(strconv.FormatFloat(f, 'f', -1, 64))
}

// Validate performs the shape checks callers must run before assembly.
// The tree builder itself assumes these hold.
func (w *WorkBreakdown) Validate() error {
	if len(w.Scopes) == 0 {
		return fmt.Errorf("work breakdown has no scopes")
	}
	if w.DiscountPercent < 0 || w.DiscountPercent > 100 {
		return fmt.Errorf("discount percent %.2f out of range [0,100]", w.DiscountPercent)
	}
	return nil
}
