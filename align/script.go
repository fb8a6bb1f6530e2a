package align

import (
	"fmt"
	"strings"
)

// Script is an ordered alignment: the edit script between A and B.
// A returned Script is owned by the caller; engines never retain it.
type Script []Op

// Repeat returns a script made of n copies of op. n <= 0 yields an empty script.
func Repeat(op Op, n int) Script {
	if n <= 0 {
		return Script{}
	}
	s := make(Script, n)
	for i := range s {
		s[i] = op
	}

	return s
}

// Consumed replays the script and returns how many elements of A and of B
// it consumes.
// Complexity: O(len(s)).
func (s Script) Consumed() (a, b int) {
	for _, op := range s {
		if op.ConsumesA() {
			a++
		}
		if op.ConsumesB() {
			b++
		}
	}

	return a, b
}

// Validate checks the reconstruction invariant: replaying s consumes
// exactly lenA elements of A and lenB elements of B.
func (s Script) Validate(lenA, lenB int) error {
	a, b := s.Consumed()
	if a != lenA || b != lenB {
		return fmt.Errorf("consumed (%d,%d), want (%d,%d): %w", a, b, lenA, lenB, ErrScriptMismatch)
	}

	return nil
}

// Pairs converts s into diff-viewer rows. Every row carries the index of the
// element consumed from each side, or -1 when the side is not consumed.
// Complexity: O(len(s)).
func (s Script) Pairs() []Pair {
	pairs := make([]Pair, len(s))
	var i, j int // next unconsumed index in A and B
	for k, op := range s {
		p := Pair{A: -1, B: -1, Op: op}
		if op.ConsumesA() {
			p.A = i
			i++
		}
		if op.ConsumesB() {
			p.B = j
			j++
		}
		pairs[k] = p
	}

	return pairs
}

// Counts returns how many times each operation occurs in s.
func (s Script) Counts() map[Op]int {
	counts := make(map[Op]int, len(opNames))
	for _, op := range s {
		counts[op]++
	}

	return counts
}

// GapOpens returns the number of maximal gap runs in s. A gap that directly
// follows another gap, of either kind, extends the run rather than opening a
// new one, mirroring the affine cost model.
func (s Script) GapOpens() int {
	opens := 0
	for k, op := range s {
		if op.IsGap() && (k == 0 || !s[k-1].IsGap()) {
			opens++
		}
	}

	return opens
}

// String renders s in its compact one-letter form, e.g. "IIPPPDDM".
func (s Script) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, op := range s {
		if int(op) < len(opLetters) {
			sb.WriteByte(opLetters[op])
		} else {
			sb.WriteByte('?')
		}
	}

	return sb.String()
}

// ParseScript is the inverse of Script.String.
func ParseScript(text string) (Script, error) {
	s := make(Script, 0, len(text))
	for k := 0; k < len(text); k++ {
		switch text[k] {
		case 'M':
			s = append(s, Match)
		case 'P':
			s = append(s, Perfect)
		case 'I':
			s = append(s, Insertion)
		case 'D':
			s = append(s, Deletion)
		default:
			return nil, fmt.Errorf("parse %q at %d: %w", text, k, ErrUnknownOp)
		}
	}

	return s, nil
}
