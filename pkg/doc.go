// Package pkg holds the libraries behind archdiagram.
//
// The architecture diagram is produced in three steps:
//
//	[scene] issues draw calls
//	    ↓
//	[draw].Drawer implemented by [render/sink] (PNG, SVG, JSON)
//	    ↓
//	[io] writes the bytes
//
// [pipeline] runs these steps for every configured format, with settings
// from [config], colors from [palette] and faces from [fonts]. The payment
// flowchart takes a separate path through [render/flowchart] and Graphviz.
//
// Supporting packages: [errors] for coded errors, [observability] for render
// hooks, [buildinfo] for version information.
package pkg
