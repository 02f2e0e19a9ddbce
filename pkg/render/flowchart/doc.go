// Package flowchart renders a [scene.Flow] as a Graphviz diagram.
//
// The flow is first converted to DOT text, which can be saved and processed
// with external Graphviz tools, then laid out and rendered in-process:
//
//	dot := flowchart.ToDOT(scene.PaymentFlow())
//	svg, err := flowchart.RenderSVG(ctx, dot)
//	png, err := flowchart.RenderPNG(ctx, dot)
//
// Steps are drawn as rounded boxes and decisions as diamonds. Edge labels
// name the branch taken out of a decision. Layout runs top to bottom.
//
// This package uses [github.com/goccy/go-graphviz], which embeds Graphviz
// as WebAssembly; no system Graphviz installation is needed.
package flowchart
