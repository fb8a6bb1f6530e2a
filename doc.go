// Package framealign is a frame-level alignment engine for comparing two
// recordings of the same material: it computes the edit script that turns
// sequence A into sequence B, frame by frame.
//
// 🚀 What is framealign?
//
//	A small, generic toolkit that brings together:
//		• align/    – edit operations, scripts, Metric/Hasher/Aligner contracts
//		• sequence/ – resettable cursors the aligners read their input through
//		• gotoh/    – affine-gap global alignment (Gotoh), O(N·M)
//		• divide/   – hash-anchored divide and conquer around any aligner
//		• metric/   – element distances: identity, pixel, perceptual hash
//		• hasher/   – SHA-256 content digests for anchoring
//
// ✨ Why an affine gap?
//
//   - A cut of 40 frames is one edit, not 40: opening a gap costs more than
//     extending it, so scripts prefer few long gaps over many short ones.
//   - Exact matches (Perfect) are told apart from similar-enough frames
//     (Match), which is what a diff viewer wants to highlight.
//
// The command in cmd/framealign aligns directories of frame images or text
// files line by line, with a persistent digest cache and Prometheus metrics.
//
// Quick example:
//
//	inner, _ := gotoh.New[string](metric.Equal[string](), -0.5, -0.1)
//	d, _ := divide.New[string](inner, hasher.String())
//	script, _ := d.Align(a, b) // e.g. "PPDPIPP"
//
//	go install github.com/katalvlaran/framealign/cmd/framealign@latest
package framealign
