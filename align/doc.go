// Package align defines the shared vocabulary of the frame aligners: the
// edit operations an alignment is made of, the Script they form, and the
// capability interfaces (Metric, Hasher, Aligner) the engines consume.
//
// 🚀 What is an alignment?
//
//	Given a reference sequence A and a modified sequence B, an alignment is an
//	ordered list of operations that, replayed left to right, walks both
//	sequences exactly once:
//	  • Perfect  : A[i] and B[j] are identical, both cursors advance
//	  • Match    : A[i] and B[j] are associated but differ, both advance
//	  • Deletion : A[i] exists only in A, the A cursor advances
//	  • Insertion: B[j] exists only in B, the B cursor advances
//
// ✨ Key properties:
//   - max(|A|,|B|) ≤ len(script) ≤ |A|+|B|
//   - Script.Validate checks the replay invariant
//   - Script.Pairs turns a script into diff-viewer rows with -1 for gaps
//
// ⚙️ Usage:
//
//	script, err := aligner.Align(a, b)
//	if err != nil {
//	  // handle
//	}
//	for _, p := range script.Pairs() {
//	  fmt.Println(p.Op, p.A, p.B)
//	}
//
// Engines live in sibling packages: gotoh (affine-gap dynamic programming)
// and divide (hash-anchored divide and conquer around any Aligner).
package align
