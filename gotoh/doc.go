// Package gotoh computes optimal global alignments between two sequences
// under an affine gap-penalty model (Gotoh's algorithm).
//
// 🚀 What is an affine gap?
//
//	Opening a gap costs gapOpen, every further element of the same run costs
//	gapExtension. With |gapExtension| < |gapOpen| the aligner prefers a few
//	long gaps over many short ones, which is what a cut or an inserted clip in
//	a video looks like.
//
// ✨ Key features:
//   - generic over the element type; similarity comes from an align.Metric
//   - three coupled score matrices (match, gap-in-A, gap-in-B)
//   - predecessor tags recorded during the forward pass, so the backtrace never
//     re-derives states from floating-point equalities
//   - deterministic tie-break: Match > Deletion > Insertion
//   - empty inputs short-circuit to pure Insertion/Deletion scripts
//
// ⚙️ Usage:
//
//	aligner, err := gotoh.New[string](metric.Equal[string](), -0.5, 0)
//	if err != nil {
//	  // handle ErrBadPenalty / align.ErrNilMetric
//	}
//	script, err := aligner.Align(a, b)
//
// Performance:
//
//   - Time:   O(N·M) metric evaluations and cell updates
//   - Memory: O(N·M), about 33 bytes per cell
//
// Long inputs should go through the divide package, which splits the problem
// on exact-match anchors before delegating the gaps between them here.
package gotoh
