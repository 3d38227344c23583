// Package triad is an in-memory toolkit for triadic analysis of signed,
// weighted networks — counting triangle configurations and classifying
// them by social-balance theory.
//
// 🚀 What is triad?
//
//	A small, focused library that brings together:
//		• matrix/  — dense row-major adjacency storage with strict numeric policy
//		• balance/ — the counting core: sign derivation, sequential and
//		             parallel chunked enumeration, a lifecycle Engine facade
//		• netcsv/  — CSV adjacency ingestion and plain-text report rendering
//		• cmd/triadcount — command-line entry point
//
// ✨ Why choose triad?
//
//   - Deterministic – the parallel path is bit-identical to the sequential one
//   - Rock-solid guarantees – sentinel errors, in-code docs, exhaustive tests
//   - Fast – flat sign matrix, i<j<k pruning, chunked parallel reduction
//
// A triad is an unordered set of three distinct nodes whose three pairwise
// edges are all present (non-zero sign). Balance theory calls triads with
// 3 or 1 positive edges stable, and those with 2 or 0 positive edges
// unstable.
//
// Quick ASCII example:
//
//	A───(+)───B
//	 \       /
//	 (−)   (−)
//	   \   /
//	     C
//
// one positive and two negative edges: a stable triad
// ("the enemy of my enemy is my friend").
//
//	go get github.com/katalvlaran/triad
package triad
