package gotoh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/sequence"
)

// Gotoh: affine-gap global alignment
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) matrices score, gapA,
//     gapB, sim and a predecessor tag per cell.
//  2. Initialize:
//     score[0][0] = gapA[0][0] = gapB[0][0] = 0
//     score[i][0] = gapB[i][0] = −∞,  gapA[i][0] = open + (i−1)·ext
//     score[0][j] = gapA[0][j] = −∞,  gapB[0][j] = open + (j−1)·ext
//  3. For i = 1..n, j = 1..m:
//     gapA[i][j]  = max(gapA[i−1][j]+ext, gapB[i−1][j]+ext, score[i−1][j]+open)
//     gapB[i][j]  = max(gapB[i][j−1]+ext, gapA[i][j−1]+ext, score[i][j−1]+open)
//     sim[i][j]   = 1 − distance(a[i−1], b[j−1])
//     score[i][j] = max(score, gapA, gapB at [i−1][j−1]) + sim[i][j]
//     remembering which operand won each max (first operand wins ties).
//  4. Start from the best of the three matrices at (n,m), Match > Deletion >
//     Insertion on ties, and follow the tags back to (0,0).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)

// Aligner is an affine-gap aligner for elements of type T. It holds no
// per-call state: matrices are allocated inside each call, so one Aligner may
// be shared by concurrent callers.
type Aligner[T any] struct {
	metric   align.Metric[T]
	open     float64
	ext      float64
	maxCells int
}

var _ align.SequenceAligner[int] = (*Aligner[int])(nil)

// New returns an Aligner scoring pairs with metric and gaps with the affine
// penalties gapOpen and gapExtension. Penalties are usually ≤ 0; the
// algorithm maximizes the total score regardless of sign.
func New[T any](metric align.Metric[T], gapOpen, gapExtension float64, opts ...Option) (*Aligner[T], error) {
	if metric == nil {
		return nil, align.ErrNilMetric
	}
	if !finite(gapOpen) || !finite(gapExtension) {
		return nil, fmt.Errorf("open=%v extension=%v: %w", gapOpen, gapExtension, ErrBadPenalty)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Aligner[T]{metric: metric, open: gapOpen, ext: gapExtension, maxCells: o.maxCells}, nil
}

// GapOpen returns the configured gap-open penalty.
func (g *Aligner[T]) GapOpen() float64 { return g.open }

// GapExtension returns the configured gap-extension penalty.
func (g *Aligner[T]) GapExtension() float64 { return g.ext }

// Align returns the optimal alignment script between a and b.
//
// Edge cases: an empty a yields len(b) Insertions, an empty b yields len(a)
// Deletions, both empty yield an empty script. No matrices are allocated in
// those cases.
func (g *Aligner[T]) Align(a, b []T) (align.Script, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return append(align.Repeat(align.Deletion, n), align.Repeat(align.Insertion, m)...), nil
	}
	t, err := g.fill(a, b)
	if err != nil {
		return nil, err
	}

	return t.backtrace()
}

// AlignSequences materialises both sequences and aligns them. The affine
// aligner needs random access, so unlike the divide package it holds both
// inputs in memory.
func (g *Aligner[T]) AlignSequences(a, b sequence.Resettable[T]) (align.Script, error) {
	xs, err := sequence.Collect(a)
	if err != nil {
		return nil, fmt.Errorf("gotoh: read a: %w", err)
	}
	ys, err := sequence.Collect(b)
	if err != nil {
		return nil, fmt.Errorf("gotoh: read b: %w", err)
	}

	return g.Align(xs, ys)
}

// Score returns the optimal total score of aligning a and b without
// reconstructing the script.
func (g *Aligner[T]) Score(a, b []T) (float64, error) {
	n, m := len(a), len(b)
	switch {
	case n == 0 && m == 0:
		return 0, nil
	case n == 0:
		return g.open + float64(m-1)*g.ext, nil
	case m == 0:
		return g.open + float64(n-1)*g.ext, nil
	}
	t, err := g.fill(a, b)
	if err != nil {
		return 0, err
	}
	best, _ := t.final()

	return best, nil
}

// fill allocates the tables and runs the forward pass.
func (g *Aligner[T]) fill(a, b []T) (*tables, error) {
	n, m := len(a), len(b)
	if err := g.checkSize(n, m); err != nil {
		return nil, err
	}
	t := newTables(n, m)
	t.initBorders(g.open, g.ext)

	var (
		i, j               int     // matrix coordinates, 1-based over a and b
		here, up, left, dg int     // flat indices of (i,j), (i-1,j), (i,j-1), (i-1,j-1)
		d                  float64 // metric distance of the current pair
		v                  float64 // winning value of a max
		sA, sB, sM         state   // winning predecessor per matrix
	)
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			here = i*t.cols + j
			up = here - t.cols
			left = here - 1
			dg = up - 1

			// Gap consuming a[i-1]: extend either gap, or open from a match.
			v, sA = best3(
				t.gapA[up]+g.ext, deletion,
				t.gapB[up]+g.ext, insertion,
				t.score[up]+g.open, match,
			)
			t.gapA[here] = v

			// Gap consuming b[j-1]: symmetric.
			v, sB = best3(
				t.gapB[left]+g.ext, insertion,
				t.gapA[left]+g.ext, deletion,
				t.score[left]+g.open, match,
			)
			t.gapB[here] = v

			d = g.metric.Distance(a[i-1], b[j-1])
			if math.IsNaN(d) {
				d = 1 // a broken metric must not poison every max downstream
			}
			t.sim[here] = 1 - d

			v, sM = best3(
				t.score[dg], match,
				t.gapA[dg], deletion,
				t.gapB[dg], insertion,
			)
			t.score[here] = v + t.sim[here]

			t.from[here] = pack(sM, sA, sB)
		}
	}

	return t, nil
}

// checkSize rejects problems whose tables overflow int or exceed maxCells.
func (g *Aligner[T]) checkSize(n, m int) error {
	rows, cols := n+1, m+1
	if rows > math.MaxInt/cols {
		return fmt.Errorf("%dx%d cells: %w", rows, cols, ErrTooLarge)
	}
	if g.maxCells > 0 && rows*cols > g.maxCells {
		return fmt.Errorf("%dx%d cells exceeds limit %d: %w", rows, cols, g.maxCells, ErrTooLarge)
	}

	return nil
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
