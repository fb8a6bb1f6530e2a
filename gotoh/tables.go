package gotoh

import (
	"fmt"
	"math"

	"github.com/katalvlaran/framealign/align"
)

// state names the matrix a path is in: score (match), gapA (deletion) or
// gapB (insertion). It doubles as the 2-bit predecessor tag.
type state uint8

const (
	match state = iota
	deletion
	insertion
)

// Tag layout inside one byte of tables.from.
const (
	tagBits = 2
	tagMask = 1<<tagBits - 1
	shiftM  = 0           // predecessor of score[i][j]
	shiftA  = tagBits     // predecessor of gapA[i][j]
	shiftB  = 2 * tagBits // predecessor of gapB[i][j]
)

// pack stores the three predecessor tags of a cell in one byte.
func pack(m, a, b state) uint8 {
	return uint8(m)<<shiftM | uint8(a)<<shiftA | uint8(b)<<shiftB
}

// tag extracts the predecessor of the matrix selected by s.
func tag(from uint8, s state) state {
	switch s {
	case deletion:
		return state(from>>shiftA&tagMask)
	case insertion:
		return state(from>>shiftB&tagMask)
	default:
		return state(from>>shiftM&tagMask)
	}
}

// tables holds the row-major (n+1)x(m+1) working matrices of one call.
type tables struct {
	rows, cols int
	score      []float64
	gapA       []float64
	gapB       []float64
	sim        []float64 // sim[i*cols+j] is the similarity of a[i-1] and b[j-1]
	from       []uint8
}

// newTables allocates zeroed tables for an n×m problem.
// Complexity: O(n·m) memory.
func newTables(n, m int) *tables {
	size := (n + 1) * (m + 1)

	return &tables{
		rows:  n + 1,
		cols:  m + 1,
		score: make([]float64, size),
		gapA:  make([]float64, size),
		gapB:  make([]float64, size),
		sim:   make([]float64, size),
		from:  make([]uint8, size),
	}
}

// initBorders fills row 0 and column 0 so that a leading gap of length k
// costs open + (k-1)·ext and can never be entered through the match state.
func (t *tables) initBorders(open, ext float64) {
	negInf := math.Inf(-1)

	for i := 1; i < t.rows; i++ {
		here := i * t.cols
		t.score[here] = negInf
		t.gapB[here] = negInf
		t.gapA[here] = open + float64(i-1)*ext
		if i == 1 {
			t.from[here] = pack(match, match, match) // opened from the origin
		} else {
			t.from[here] = pack(match, deletion, match)
		}
	}
	for j := 1; j < t.cols; j++ {
		t.score[j] = negInf
		t.gapA[j] = negInf
		t.gapB[j] = open + float64(j-1)*ext
		if j == 1 {
			t.from[j] = pack(match, match, match)
		} else {
			t.from[j] = pack(match, match, insertion)
		}
	}
}

// final returns the optimal score at (n,m) and the state it ends in.
func (t *tables) final() (float64, state) {
	last := len(t.score) - 1

	return best3(
		t.score[last], match,
		t.gapA[last], deletion,
		t.gapB[last], insertion,
	)
}

// backtrace follows the recorded tags from (n,m) to (0,0) and returns the
// script in forward order.
func (t *tables) backtrace() (align.Script, error) {
	_, st := t.final()
	i, j := t.rows-1, t.cols-1
	out := make(align.Script, 0, i+j)

	for i > 0 || j > 0 {
		here := i*t.cols + j
		switch st {
		case match:
			if i == 0 || j == 0 {
				return nil, fmt.Errorf("match at (%d,%d): %w", i, j, ErrBacktrace)
			}
			if t.sim[here] == 1 {
				out = append(out, align.Perfect)
			} else {
				out = append(out, align.Match)
			}
			st = tag(t.from[here], match)
			i--
			j--
		case deletion:
			if i == 0 {
				return nil, fmt.Errorf("deletion at (0,%d): %w", j, ErrBacktrace)
			}
			out = append(out, align.Deletion)
			st = tag(t.from[here], deletion)
			i--
		case insertion:
			if j == 0 {
				return nil, fmt.Errorf("insertion at (%d,0): %w", i, ErrBacktrace)
			}
			out = append(out, align.Insertion)
			st = tag(t.from[here], insertion)
			j--
		}
	}

	// reverse in place: the walk emitted back-to-front
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out, nil
}

// best3 returns the largest of three candidates and its state. Candidates
// are passed in preference order; a later one wins only if strictly greater.
func best3(x float64, sx state, y float64, sy state, z float64, sz state) (float64, state) {
	v, s := x, sx
	if y > v {
		v, s = y, sy
	}
	if z > v {
		v, s = z, sz
	}

	return v, s
}
