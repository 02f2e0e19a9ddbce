package flowchart

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

func TestToDOT(t *testing.T) {
	f := scene.PaymentFlow()
	dot := ToDOT(f)

	if !strings.HasPrefix(dot, "digraph G {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("not a digraph:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Error("missing rankdir=TB")
	}

	for _, n := range f.Nodes {
		t.Run("node/"+n.ID, func(t *testing.T) {
			line := nodeLine(t, dot, n.ID)
			if !strings.Contains(line, fmt.Sprintf("label=%q", n.Label)) {
				t.Errorf("label missing: %s", line)
			}
			wantShape := "shape=box"
			if n.Shape == scene.ShapeDecision {
				wantShape = "shape=diamond"
			}
			if !strings.Contains(line, wantShape) {
				t.Errorf("want %s: %s", wantShape, line)
			}
		})
	}

	for _, e := range f.Edges {
		want := fmt.Sprintf("%q -> %q", e.From, e.To)
		if e.Label != "" {
			want += fmt.Sprintf(" [label=%q]", e.Label)
		}
		if !strings.Contains(dot, want+";") {
			t.Errorf("missing edge %s", want)
		}
	}
}

func TestToDOTOrder(t *testing.T) {
	f := scene.Flow{
		Nodes: []scene.FlowNode{{ID: "b", Label: "B"}, {ID: "a", Label: "A"}},
		Edges: []scene.FlowEdge{{From: "b", To: "a"}},
	}
	dot := ToDOT(f)
	if strings.Index(dot, `"b" [`) > strings.Index(dot, `"a" [`) {
		t.Errorf("nodes reordered:\n%s", dot)
	}
	if strings.Contains(dot, "label=\"\";") {
		t.Error("empty title should not emit a graph label")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(scene.PaymentFlow()))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
	if !strings.Contains(string(svg), "Done") {
		t.Error("node label missing from SVG")
	}
}

func TestRenderInvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), "digraph {")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput && code != errors.ErrCodeRenderFailed {
		t.Errorf("code = %s", code)
	}
}

func nodeLine(t *testing.T, dot, id string) string {
	t.Helper()
	prefix := fmt.Sprintf("  %q [", id)
	for _, line := range strings.Split(dot, "\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	t.Fatalf("node %s not found", id)
	return ""
}
