package flowchart

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/scene"
)

const (
	stepFill     = "#E8F4FD"
	decisionFill = "#FFF7ED"
	edgeColor    = "#333333"
)

// ToDOT converts f to Graphviz DOT source. Nodes and edges are emitted in the
// order f lists them.
func ToDOT(f scene.Flow) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	if f.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=28;\n", f.Title)
	}
	buf.WriteString("  node [fontname=\"Helvetica\", fontsize=16, margin=\"0.2,0.1\"];\n")
	fmt.Fprintf(&buf, "  edge [fontname=\"Helvetica\", fontsize=14, color=%q, penwidth=2];\n", edgeColor)
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range f.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range f.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n scene.FlowNode) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.Label)}
	switch n.Shape {
	case scene.ShapeDecision:
		attrs = append(attrs, "shape=diamond", "style=filled", fmt.Sprintf("fillcolor=%q", decisionFill))
	default:
		attrs = append(attrs, "shape=box", "style=\"rounded,filled\"", fmt.Sprintf("fillcolor=%q", stepFill))
	}
	return attrs
}

// RenderSVG lays out dot and renders it as SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG lays out dot and renders it as PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
