// Package admg is an in-memory toolkit for mixed-edge causal graphs:
// graphs whose edge set is partitioned into named layers (directed
// arrows, bidirected latent-confounder arcs, ...) over one shared node
// set, plus the separation algorithms that make them useful.
//
// 🚀 What is admg?
//
//	A pure-Go library that brings together:
//		• core primitives: single-edge-type graphs with metadata,
//		  deterministic enumeration, components and union-find
//		• mixed: the MixedEdgeGraph — per-type layers, typed edge
//		  operations, aggregated adjacency views
//		• causal: m-separation, bidirected→unobserved-confounder
//		  conversion, v-structure enumeration
//
// ✨ Why choose admg?
//
//   - Minimal API, clear naming, typed sentinel errors
//   - Deterministic by contract — every enumeration surface is sorted
//   - Pure Go — no cgo, the only external dependency is the test suite
//
// Packages:
//
//	core/    — fundamental Graph, Vertex, Edge types & connectivity utilities
//	mixed/   — mixed-edge graph over named core.Graph layers
//	causal/  — m-separation, confounder conversion, v-structures
//
// Quick ASCII example (the canonical three-node fixture):
//
//	Z ──▶ X ──▶ Y
//	      └↔───┘        (bidirected X↔Y)
//
//	Z and Y are connected through the directed chain, and conditioning
//	on X still leaves them connected via the bidirected arc.
//
//	go get github.com/katalvlaran/admg
package admg
