package divide

import (
	"io"
	"log/slog"
)

// Observer receives progress callbacks from an Aligner. Implementations must
// be cheap; they run on the aligning goroutine.
type Observer interface {
	// OnAnchors reports how many unique digest pairs were found and how many
	// of them survived the monotone-chain filter.
	OnAnchors(candidates, kept int)

	// OnSegment reports one non-empty stretch between anchors. delegated is
	// false when one side was empty and the segment was emitted directly.
	OnSegment(lenA, lenB int, delegated bool)
}

// nopObserver is the default Observer.
type nopObserver struct{}

func (nopObserver) OnAnchors(int, int) {}
func (nopObserver) OnSegment(int, int, bool) {}

// Option configures an Aligner.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
}

// defaultOptions logs nowhere and observes nothing.
func defaultOptions() options {
	return options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
}

// WithLogger sets the logger used for debug-level progress messages.
// A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers progress hooks. A nil observer keeps the default.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
