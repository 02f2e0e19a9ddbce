// Package render groups the output backends.
//
//   - [sink]: renderers for [draw.Drawer] scenes (PNG on a gogpu/gg canvas,
//     SVG, and a JSON display list)
//   - [flowchart]: DOT generation and Graphviz rendering for flowcharts
package render
