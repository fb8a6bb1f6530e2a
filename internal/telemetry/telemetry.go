// Package telemetry records alignment statistics in Prometheus collectors
// on a private registry and writes them out in the text exposition format,
// for scraping by a node-exporter textfile collector or for reading by hand.
package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/divide"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const namespace = "framealign"

// Recorder collects alignment metrics. It implements divide.Observer.
type Recorder struct {
	registry *prometheus.Registry

	candidates  prometheus.Counter
	anchors     prometheus.Counter
	segments    *prometheus.CounterVec
	cells       prometheus.Histogram
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
	ops         *prometheus.CounterVec
	cache       *prometheus.GaugeVec
}

var _ divide.Observer = (*Recorder)(nil)

// New returns a Recorder with every collector registered on a fresh
// registry. constLabels are attached to every series (run_id, for example).
func New(constLabels prometheus.Labels) *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		candidates: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "anchor_candidates_total",
			Help:        "Digest pairs unique on both sides.",
			ConstLabels: constLabels,
		}),
		anchors: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "anchors_total",
			Help:        "Anchor pairs kept after the monotone chain filter.",
			ConstLabels: constLabels,
		}),
		segments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "segments_total",
			Help:        "Non-empty stretches between anchors by handling.",
			ConstLabels: constLabels,
		}, []string{"handling"}),
		cells: f.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "segment_cells",
			Help:        "DP cells (lenA*lenB) of segments handed to the inner aligner.",
			Buckets:     prometheus.ExponentialBuckets(1, 10, 8),
			ConstLabels: constLabels,
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "alignments_total",
			Help:        "Completed alignments by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		runDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "alignment_duration_seconds",
			Help:        "Wall time of one alignment.",
			Buckets:     prometheus.ExponentialBuckets(0.001, 4, 10),
			ConstLabels: constLabels,
		}),
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "script_ops_total",
			Help:        "Edit operations in produced scripts.",
			ConstLabels: constLabels,
		}, []string{"op"}),
		cache: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "digest_cache_lookups",
			Help:        "Frame digests served from the cache or computed.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}

// OnAnchors implements divide.Observer.
func (r *Recorder) OnAnchors(candidates, kept int) {
	r.candidates.Add(float64(candidates))
	r.anchors.Add(float64(kept))
}

// OnSegment implements divide.Observer.
func (r *Recorder) OnSegment(lenA, lenB int, delegated bool) {
	if !delegated {
		r.segments.WithLabelValues("direct").Inc()
		return
	}
	r.segments.WithLabelValues("delegated").Inc()
	r.cells.Observe(float64(lenA) * float64(lenB))
}

// ObserveRun records one finished alignment and the operations of its
// script. script is ignored when err is non-nil.
func (r *Recorder) ObserveRun(elapsed time.Duration, script align.Script, err error) {
	r.runDuration.Observe(elapsed.Seconds())
	if err != nil {
		r.runs.WithLabelValues("error").Inc()
		return
	}
	r.runs.WithLabelValues("ok").Inc()
	for op, n := range script.Counts() {
		r.ops.WithLabelValues(op.String()).Add(float64(n))
	}
}

// SetCacheStats publishes digest cache hit and miss totals.
func (r *Recorder) SetCacheStats(hits, misses int64) {
	r.cache.WithLabelValues("hit").Set(float64(hits))
	r.cache.WithLabelValues("miss").Set(float64(misses))
}

// Gather returns the current metric families, sorted by name.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
