// Package divide wraps any align.Aligner with a hash-anchored divide and
// conquer step, so that long, mostly unchanged recordings never reach the
// quadratic aligner as a whole.
//
// 🚀 How it works:
//
//  1. Hash every element of A and of B once (one pass per side, then Reset).
//  2. Drop digests that occur more than once within their own side: a frame
//     repeated inside one recording cannot anchor unambiguously.
//  3. Pair each remaining A digest with the B element carrying the same
//     digest, then keep the longest chain of pairs that increases in both
//     coordinates. Those pairs are the anchors.
//  4. Walk both sequences anchor by anchor: the elements strictly between two
//     anchors form a sub-problem for the inner aligner (or a pure
//     Insertion/Deletion run when one side is empty), each anchor itself is
//     one Perfect.
//
// ✨ Properties:
//   - The result always consumes all of A and all of B exactly once.
//   - With no anchors the result equals the inner aligner's own output.
//   - Anchor finding is O(|A|+|B|) with maps plus O(k log k) for the chain.
//   - Only one segment per side is materialised at a time.
//
// ⚙️ Usage:
//
//	inner, _ := gotoh.New[*frames.Frame](m, -0.5, -0.1)
//	d, _ := divide.New[*frames.Frame](inner, h, divide.WithLogger(logger))
//	script, err := d.AlignSequences(srcA, srcB)
//
// An Aligner keeps no per-call state, so reusing one is always safe. It is
// safe for concurrent use iff its inner aligner is and callers do not share
// the sequences. Hash collisions silently create wrong anchors; the hasher
// is trusted.
package divide
