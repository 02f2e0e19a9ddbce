// Package scene holds the diagrams archdiagram knows how to draw.
//
// [Architecture] is the Finance system architecture diagram: a fixed list of
// rectangles, arrows and text at literal pixel coordinates on a
// [Width] x [Height] canvas. It is deliberately not data driven; every box and
// arrow is its own call.
//
// [PaymentFlow] is the payment-processing flowchart from the project docs. It
// is plain node/edge data because Graphviz lays it out.
package scene
