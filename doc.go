// Package flownet is a compact maximum-flow toolkit: a generic residual-graph
// engine plus the grid-world assignment reduction built on top of it.
//
// 🚀 What is flownet?
//
//	A small, pure-Go library organized around one primitive:
//		• flow/       — generic residual graph + Edmonds–Karp max-flow solver
//		• gridassign/ — textual grid worlds, bounded reachability, and the
//		                node-splitting reduction that turns "how many hubs can
//		                be supplied?" into a single max-flow call
//
// ✨ Why choose flownet?
//
//   - Generic nodes – any comparable type can key the network, no string IDs required
//   - Deterministic – insertion-ordered adjacency, reproducible augmentations
//   - Pure Go – no cgo, no hidden deps
//   - Observable – synchronous hooks (OnAugment) for tracing every push
//
// Quick ASCII example:
//
//	    s──▶a──▶t
//	    │       ▲
//	    └──▶b───┘
//
//	two unit paths from s to t carry a maximum flow of 2.
//
// Dive into the per-package docs for the full API, complexity notes,
// and worked scenarios under examples/.
//
//	go get github.com/katalvlaran/flownet
package flownet
