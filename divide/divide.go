package divide

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/sequence"
)

// Aligner splits an alignment on exact-hash anchors and delegates the
// stretches between anchors to an inner aligner.
type Aligner[T any] struct {
	inner    align.Aligner[T]
	hasher   align.Hasher[T]
	logger   *slog.Logger
	observer Observer
}

var _ align.SequenceAligner[int] = (*Aligner[int])(nil)

// New returns a divide-and-conquer Aligner around inner, anchoring on
// digests produced by hasher.
func New[T any](inner align.Aligner[T], hasher align.Hasher[T], opts ...Option) (*Aligner[T], error) {
	if inner == nil {
		return nil, align.ErrNilAligner
	}
	if hasher == nil {
		return nil, align.ErrNilHasher
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Aligner[T]{
		inner:    inner,
		hasher:   hasher,
		logger:   o.logger,
		observer: o.observer,
	}, nil
}

// Align aligns two in-memory slices.
func (d *Aligner[T]) Align(a, b []T) (align.Script, error) {
	return d.AlignSequences(sequence.FromSlice(a), sequence.FromSlice(b))
}

// Anchors hashes both sequences and returns the anchor chain, strictly
// increasing in both coordinates. Both sequences are left rewound.
func (d *Aligner[T]) Anchors(a, b sequence.Resettable[T]) ([]Anchor, error) {
	dg := &digester[T]{hasher: d.hasher}
	hashesA, err := dg.digests(a)
	if err != nil {
		return nil, fmt.Errorf("divide: sequence a: %w", err)
	}
	hashesB, err := dg.digests(b)
	if err != nil {
		return nil, fmt.Errorf("divide: sequence b: %w", err)
	}

	candidates := candidatePairs(hashesA, hashesB)
	anchors := increasingChain(candidates)
	d.observer.OnAnchors(len(candidates), len(anchors))
	d.logger.Debug("anchors found",
		slog.Int("size_a", len(hashesA)),
		slog.Int("size_b", len(hashesB)),
		slog.Int("candidates", len(candidates)),
		slog.Int("anchors", len(anchors)),
	)

	return anchors, nil
}

// AlignSequences aligns two resettable sequences. Each sequence is reset
// exactly twice: before and after the hashing pass. Afterwards both are
// fully consumed.
//
// Stage 1 (Anchor): hash both sides and build the anchor chain.
// Stage 2 (Walk): for every anchor, align the stretch before it, then emit
// one Perfect for the anchor itself.
// Stage 3 (Finalize): align the trailing stretch and validate the script.
func (d *Aligner[T]) AlignSequences(a, b sequence.Resettable[T]) (align.Script, error) {
	anchors, err := d.Anchors(a, b)
	if err != nil {
		return nil, err
	}

	sizeA, sizeB := a.Size(), b.Size()
	out := make(align.Script, 0, max(sizeA, sizeB))
	nextA, nextB := 0, 0

	var part align.Script
	for _, an := range anchors {
		part, err = d.segment(a, b, an.A-nextA, an.B-nextB)
		if err != nil {
			return nil, fmt.Errorf("divide: segment before anchor (%d,%d): %w", an.A, an.B, err)
		}
		out = append(out, part...)

		// step over the anchor pair itself
		if err = skip(a, 1); err != nil {
			return nil, fmt.Errorf("divide: anchor a[%d]: %w", an.A, err)
		}
		if err = skip(b, 1); err != nil {
			return nil, fmt.Errorf("divide: anchor b[%d]: %w", an.B, err)
		}
		out = append(out, align.Perfect)
		nextA, nextB = an.A+1, an.B+1
	}

	part, err = d.segment(a, b, sizeA-nextA, sizeB-nextB)
	if err != nil {
		return nil, fmt.Errorf("divide: trailing segment: %w", err)
	}
	out = append(out, part...)

	if a.HasNext() || b.HasNext() {
		return nil, fmt.Errorf("divide: input outlived its size: %w", sequence.ErrLongSequence)
	}
	if err = out.Validate(sizeA, sizeB); err != nil {
		return nil, fmt.Errorf("divide: %w", err)
	}

	return out, nil
}

// segment consumes the next lenA elements of a and lenB elements of b and
// aligns them. A stretch that is empty on one side becomes a run of pure
// gaps without materialising it.
func (d *Aligner[T]) segment(a, b sequence.Resettable[T], lenA, lenB int) (align.Script, error) {
	if lenA == 0 || lenB == 0 {
		if lenA+lenB == 0 {
			return nil, nil
		}
		if err := skip(a, lenA); err != nil {
			return nil, err
		}
		if err := skip(b, lenB); err != nil {
			return nil, err
		}
		d.observer.OnSegment(lenA, lenB, false)

		return append(align.Repeat(align.Deletion, lenA), align.Repeat(align.Insertion, lenB)...), nil
	}

	subA, err := sequence.Take(a, lenA)
	if err != nil {
		return nil, err
	}
	subB, err := sequence.Take(b, lenB)
	if err != nil {
		return nil, err
	}
	d.observer.OnSegment(lenA, lenB, true)
	d.logger.Debug("delegating segment", slog.Int("len_a", lenA), slog.Int("len_b", lenB))

	part, err := d.inner.Align(subA, subB)
	if err != nil {
		return nil, err
	}
	if err = part.Validate(lenA, lenB); err != nil {
		return nil, fmt.Errorf("inner aligner: %w", err)
	}

	return part, nil
}

// skip advances s by n elements without keeping them.
func skip[T any](s sequence.Resettable[T], n int) error {
	for k := 0; k < n; k++ {
		if !s.HasNext() {
			return fmt.Errorf("skip %d, got %d: %w", n, k, sequence.ErrShortSequence)
		}
		if _, err := s.Next(); err != nil {
			return err
		}
	}

	return nil
}
