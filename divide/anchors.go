package divide

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/sequence"
)

// Anchor pairs index A of sequence A with index B of sequence B whose
// elements have equal digests.
type Anchor struct {
	A int `json:"a"`
	B int `json:"b"`
}

// digester hashes sequences and enforces one digest width per call.
type digester[T any] struct {
	hasher align.Hasher[T]
	width  int // 0 until the first digest is seen
}

// digests rewinds s, hashes every element once in order, checks that s
// produced exactly Size elements, and rewinds s again. Digests are returned
// as strings so they can key maps.
func (dg *digester[T]) digests(s sequence.Resettable[T]) ([]string, error) {
	if err := s.Reset(); err != nil {
		return nil, err
	}
	n := s.Size()
	out := make([]string, 0, n)

	for k := 0; k < n; k++ {
		if !s.HasNext() {
			return nil, fmt.Errorf("hash pass %d of %d: %w", k, n, sequence.ErrShortSequence)
		}
		x, err := s.Next()
		if err != nil {
			return nil, fmt.Errorf("hash pass %d: %w", k, err)
		}
		d, err := dg.hasher.Hash(x)
		if err != nil {
			return nil, fmt.Errorf("hash element %d: %w", k, err)
		}
		if len(d) == 0 || (dg.width != 0 && len(d) != dg.width) {
			return nil, fmt.Errorf("element %d has %d bytes, want %d: %w", k, len(d), dg.width, align.ErrDigestLength)
		}
		dg.width = len(d)
		out = append(out, string(d))
	}
	if s.HasNext() {
		return nil, fmt.Errorf("hash pass %d: %w", n, sequence.ErrLongSequence)
	}

	return out, s.Reset()
}

// uniqueIndex maps every digest occurring exactly once in ds to its index.
// Digests occurring more than once are left out entirely.
// Complexity: O(len(ds)).
func uniqueIndex(ds []string) map[string]int {
	counts := make(map[string]int, len(ds))
	for _, d := range ds {
		counts[d]++
	}
	idx := make(map[string]int, len(ds))
	for i, d := range ds {
		if counts[d] == 1 {
			idx[d] = i
		}
	}

	return idx
}

// candidatePairs returns, in A order, every pair (i, j) where hashesA[i] is
// unique in A, hashesB[j] is unique in B and the two are equal.
// Complexity: O(|A|+|B|).
func candidatePairs(hashesA, hashesB []string) []Anchor {
	uniqA := uniqueIndex(hashesA)
	uniqB := uniqueIndex(hashesB)

	var out []Anchor
	for i, d := range hashesA {
		if at, ok := uniqA[d]; !ok || at != i {
			continue
		}
		if j, ok := uniqB[d]; ok {
			out = append(out, Anchor{A: i, B: j})
		}
	}

	return out
}

// increasingChain returns the longest subsequence of pairs (already sorted
// by A) whose B indices strictly increase. Among chains of equal length the
// one whose last elements are smallest is kept, which is deterministic.
// Complexity: O(k log k) for k pairs.
func increasingChain(pairs []Anchor) []Anchor {
	if len(pairs) == 0 {
		return nil
	}
	tails := make([]int, 0, len(pairs)) // tails[l] = index of the smallest tail of a chain of length l+1
	prev := make([]int, len(pairs))     // back-links into pairs, -1 at a chain start

	for k, p := range pairs {
		pos := sort.Search(len(tails), func(x int) bool { return pairs[tails[x]].B >= p.B })
		if pos > 0 {
			prev[k] = tails[pos-1]
		} else {
			prev[k] = -1
		}
		if pos == len(tails) {
			tails = append(tails, k)
		} else {
			tails[pos] = k
		}
	}

	out := make([]Anchor, len(tails))
	for k, x := len(tails)-1, tails[len(tails)-1]; k >= 0; k-- {
		out[k] = pairs[x]
		x = prev[x]
	}

	return out
}
