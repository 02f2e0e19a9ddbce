package scene

import (
	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Shape is the Graphviz node shape for a flowchart step.
type Shape string

const (
	ShapeStep     Shape = "box"
	ShapeDecision Shape = "diamond"
)

// FlowNode is one step of a flowchart.
type FlowNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape Shape  `json:"shape"`
}

// FlowEdge connects two steps, optionally labelled with the branch taken.
type FlowEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// Flow is an ordered flowchart. Node and edge order is preserved in output.
type Flow struct {
	Title string     `json:"title"`
	Nodes []FlowNode `json:"nodes"`
	Edges []FlowEdge `json:"edges"`
}

// Node returns the node with the given id.
func (f Flow) Node(id string) (FlowNode, bool) {
	for _, n := range f.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return FlowNode{}, false
}

// Validate checks that node ids are unique and non-empty and that every edge
// joins two known nodes.
func (f Flow) Validate() error {
	seen := make(map[string]bool, len(f.Nodes))
	for _, n := range f.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "flow %q: node with empty id", f.Title)
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "flow %q: duplicate node %q", f.Title, n.ID)
		}
		seen[n.ID] = true
	}
	for _, e := range f.Edges {
		if !seen[e.From] || !seen[e.To] {
			return errors.New(errors.ErrCodeInvalidInput, "flow %q: edge %s -> %s references unknown node", f.Title, e.From, e.To)
		}
	}
	return nil
}

// PaymentFlow returns the payment-processing flowchart: how a payment is
// booked against the amortization schedule depending on whether it spans
// periods and whether it over- or under-pays.
func PaymentFlow() Flow {
	return Flow{
		Title: "Payment Processing",
		Nodes: []FlowNode{
			{ID: "start", Label: "Start payment processing", Shape: ShapeStep},
			{ID: "periods", Label: "Process current and past periods", Shape: ShapeStep},
			{ID: "cross", Label: "Cross-period payment?", Shape: ShapeDecision},
			{ID: "variance", Label: "Overpaid or underpaid?", Shape: ShapeDecision},
			{ID: "prepaid", Label: "Record prepaid entry", Shape: ShapeStep},
			{ID: "debit", Label: "Record debit expense\n(no prepaid account)", Shape: ShapeStep},
			{ID: "credit", Label: "Record credit expense", Shape: ShapeStep},
			{ID: "transfer", Label: "Transfer prepaid to payable\nmonth by month", Shape: ShapeStep},
			{ID: "final", Label: "Final period special handling\n(total variance adjustment)", Shape: ShapeStep},
			{ID: "done", Label: "Done", Shape: ShapeStep},
		},
		Edges: []FlowEdge{
			{From: "start", To: "periods"},
			{From: "periods", To: "cross"},
			{From: "cross", To: "variance", Label: "single period"},
			{From: "cross", To: "prepaid", Label: "cross-period"},
			{From: "variance", To: "debit", Label: "overpaid"},
			{From: "variance", To: "credit", Label: "underpaid"},
			{From: "prepaid", To: "transfer"},
			{From: "transfer", To: "final"},
			{From: "debit", To: "done"},
			{From: "credit", To: "done"},
			{From: "final", To: "done"},
		},
	}
}
