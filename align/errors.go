package align

import "errors"

// Sentinel errors shared by the alignment engines. Messages are prefixed with
// "align: " and callers match them with errors.Is; engines add context with
// fmt.Errorf("...: %w", ErrX) at their boundary.
var (
	// ErrScriptMismatch indicates that replaying a script does not consume
	// exactly the lengths of the two input sequences.
	ErrScriptMismatch = errors.New("align: script does not reconstruct both sequences")

	// ErrNilMetric is returned by constructors given a nil Metric.
	ErrNilMetric = errors.New("align: metric is nil")

	// ErrNilHasher is returned by constructors given a nil Hasher.
	ErrNilHasher = errors.New("align: hasher is nil")

	// ErrNilAligner is returned by wrappers given a nil inner Aligner.
	ErrNilAligner = errors.New("align: inner aligner is nil")

	// ErrDigestLength indicates that a Hasher produced digests of differing
	// (or zero) length within one alignment call.
	ErrDigestLength = errors.New("align: hasher produced inconsistent digest length")

	// ErrUnknownOp is returned when decoding an unrecognised operation name.
	ErrUnknownOp = errors.New("align: unknown operation")
)
