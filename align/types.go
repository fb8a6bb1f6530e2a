package align

import (
	"fmt"

	"github.com/katalvlaran/framealign/sequence"
)

// Op is one element of an alignment script.
//
//   - Match    : A[i] and B[j] are aligned and scored by the Metric.
//   - Perfect  : A[i] and B[j] are aligned and exactly equal.
//   - Insertion: B[j] has no counterpart in A.
//   - Deletion : A[i] has no counterpart in B.
type Op uint8

const (
	// Match aligns two elements that differ under the Metric.
	Match Op = iota

	// Perfect aligns two elements that are exactly equal (metric distance 0
	// or identical digests).
	Perfect

	// Insertion consumes one element of B only.
	Insertion

	// Deletion consumes one element of A only.
	Deletion
)

// opNames maps every Op to its canonical upper-case name.
var opNames = [...]string{
	Match:     "MATCH",
	Perfect:   "PERFECT",
	Insertion: "INSERTION",
	Deletion:  "DELETION",
}

// opLetters maps every Op to the one-letter form used by Script.String.
var opLetters = [...]byte{
	Match:     'M',
	Perfect:   'P',
	Insertion: 'I',
	Deletion:  'D',
}

// String returns the canonical name of op.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

// ConsumesA reports whether op advances the cursor of sequence A.
func (op Op) ConsumesA() bool { return op == Match || op == Perfect || op == Deletion }

// ConsumesB reports whether op advances the cursor of sequence B.
func (op Op) ConsumesB() bool { return op == Match || op == Perfect || op == Insertion }

// IsGap reports whether op consumes exactly one side.
func (op Op) IsGap() bool { return op == Insertion || op == Deletion }

// MarshalText implements encoding.TextMarshaler.
func (op Op) MarshalText() ([]byte, error) {
	if int(op) >= len(opNames) {
		return nil, fmt.Errorf("marshal %d: %w", uint8(op), ErrUnknownOp)
	}

	return []byte(opNames[op]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Op) UnmarshalText(text []byte) error {
	for i, name := range opNames {
		if name == string(text) {
			*op = Op(i)
			return nil
		}
	}

	return fmt.Errorf("unmarshal %q: %w", text, ErrUnknownOp)
}

// Pair is one row of a frame-by-frame alignment, as shown by a diff viewer.
// A and B are zero-based element indices; the absent side of a gap is -1.
type Pair struct {
	A  int `json:"a"`
	B  int `json:"b"`
	Op Op  `json:"op"`
}

// Metric returns a dissimilarity in [0,1] between two elements: symmetric,
// and 0 iff the elements are identical for scoring purposes. The engines
// trust this contract and never validate it.
type Metric[T any] interface {
	Distance(x, y T) float64
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc[T any] func(x, y T) float64

// Distance calls f(x, y).
func (f MetricFunc[T]) Distance(x, y T) float64 { return f(x, y) }

// Hasher maps an element to a fixed-length content digest. Two elements with
// byte-equal digests are treated as exact matches; collisions are not
// defended against.
type Hasher[T any] interface {
	Hash(x T) ([]byte, error)
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[T any] func(x T) ([]byte, error)

// Hash calls f(x).
func (f HasherFunc[T]) Hash(x T) ([]byte, error) { return f(x) }

// Aligner computes an alignment between two materialised sequences.
type Aligner[T any] interface {
	Align(a, b []T) (Script, error)
}

// AlignerFunc adapts an ordinary function to the Aligner interface.
type AlignerFunc[T any] func(a, b []T) (Script, error)

// Align calls f(a, b).
func (f AlignerFunc[T]) Align(a, b []T) (Script, error) { return f(a, b) }

// SequenceAligner is an Aligner that can also consume resettable sequences
// without requiring the caller to materialise them first.
type SequenceAligner[T any] interface {
	Aligner[T]
	AlignSequences(a, b sequence.Resettable[T]) (Script, error)
}
