package gotoh

import "errors"

// Default penalties used by the command line front end. Both are rewards
// subtracted from the total score, so they are negative.
const (
	// DefaultGapOpen is the cost of starting a new gap run.
	DefaultGapOpen = -0.5

	// DefaultGapExtension is the cost of each further element of a gap run.
	DefaultGapExtension = -0.1
)

var (
	// ErrBadPenalty indicates a NaN or infinite gap penalty.
	ErrBadPenalty = errors.New("gotoh: gap penalties must be finite")

	// ErrTooLarge indicates the score matrices would exceed the configured
	// cell limit or overflow int.
	ErrTooLarge = errors.New("gotoh: alignment problem too large")

	// ErrBacktrace signals an internal inconsistency in the predecessor tags.
	// It is never expected for finite penalties.
	ErrBacktrace = errors.New("gotoh: backtrace left the matrix")
)

const panicMaxCellsInvalid = "gotoh: WithMaxCells: limit must be non-negative"

// Option configures an Aligner.
type Option func(*options)

type options struct {
	maxCells int // 0 ⇒ unlimited
}

// WithMaxCells caps the number of cells, (n+1)·(m+1), a single alignment may
// allocate. Zero disables the cap. Negative values panic (programmer error).
func WithMaxCells(n int) Option {
	if n < 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *options) { o.maxCells = n }
}
