package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/divide"
	"github.com/katalvlaran/framealign/gotoh"
	"github.com/katalvlaran/framealign/hasher"
	"github.com/katalvlaran/framealign/internal/config"
	"github.com/katalvlaran/framealign/internal/digestcache"
	"github.com/katalvlaran/framealign/internal/frames"
	"github.com/katalvlaran/framealign/internal/telemetry"
	"github.com/katalvlaran/framealign/metric"
	"github.com/katalvlaran/framealign/sequence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newFramesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frames <dirA> <dirB>",
		Short: "Align two directories of frame images",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runFrames(args[0], args[1])
		},
	}
	f := cmd.Flags()
	f.String("metric", "", "frame distance: pixel|perceptual|equal")
	f.String("hash-kind", "", "perceptual hash: difference|average|perception")
	f.String("cache-dir", "", "persist frame digests in this directory")
	f.StringSlice("formats", nil, "accepted frame file extensions")

	return cmd
}

func newLinesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "lines <fileA> <fileB>",
		Short: "Align two text files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runLines(args[0], args[1])
		},
	}
}

func (s *session) runFrames(dirA, dirB string) (err error) {
	formats := frames.NewFormats(s.cfg.Frames.Formats...)
	srcA, err := frames.Open(dirA, formats)
	if err != nil {
		return err
	}
	srcB, err := frames.Open(dirB, formats)
	if err != nil {
		return err
	}

	var cache frames.DigestCache
	if dir := s.cfg.Frames.CacheDir; dir != "" {
		dc, oerr := digestcache.Open(dir)
		if oerr != nil {
			return oerr
		}
		defer func() {
			if cerr := dc.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		cache = dc
	}
	h := frames.NewHasher(cache, s.logger)

	m, err := frameMetric(s.cfg.Frames, h)
	if err != nil {
		return err
	}
	rec := s.recorder()
	script, err := runAlignment[*frames.Frame](s, rec, srcA, srcB, m, h, frames.ReleaseAfter)
	hits, misses := h.Stats()
	rec.SetCacheStats(hits, misses)
	s.logger.Debug("digests", slog.Int64("cache_hits", hits), slog.Int64("computed", misses))
	if err != nil {
		return err
	}

	label := func(fs []*frames.Frame) func(int) string {
		return func(i int) string { return fs[i].Path }
	}
	if err = writeResult(s.stdout, s.cfg.Output, s.runID, script, label(srcA.Frames()), label(srcB.Frames())); err != nil {
		return err
	}

	return s.writeMetrics(rec)
}

func (s *session) runLines(fileA, fileB string) error {
	a, err := readLines(fileA)
	if err != nil {
		return err
	}
	b, err := readLines(fileB)
	if err != nil {
		return err
	}

	rec := s.recorder()
	script, err := runAlignment[string](s, rec, sequence.FromSlice(a), sequence.FromSlice(b), metric.Equal[string](), hasher.String(), nil)
	if err != nil {
		return err
	}
	label := func(lines []string) func(int) string {
		return func(i int) string { return lines[i] }
	}
	if err = writeResult(s.stdout, s.cfg.Output, s.runID, script, label(a), label(b)); err != nil {
		return err
	}

	return s.writeMetrics(rec)
}

// runAlignment builds the configured aligner stack and runs it once. When
// set, wrap decorates the segment aligner handed to divide.
func runAlignment[T any](
	s *session,
	rec *telemetry.Recorder,
	a, b sequence.Resettable[T],
	m align.Metric[T],
	h align.Hasher[T],
	wrap func(align.Aligner[T]) align.Aligner[T],
) (align.Script, error) {
	inner, err := gotoh.New[T](m, s.cfg.Align.GapOpen, s.cfg.Align.GapExtension, gotoh.WithMaxCells(s.cfg.Align.MaxCells))
	if err != nil {
		return nil, err
	}
	var aligner align.SequenceAligner[T] = inner
	if s.cfg.Align.Divide {
		var segment align.Aligner[T] = inner
		if wrap != nil {
			segment = wrap(inner)
		}
		aligner, err = divide.New[T](segment, h, divide.WithLogger(s.logger), divide.WithObserver(rec))
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("aligning",
		slog.Int("size_a", a.Size()),
		slog.Int("size_b", b.Size()),
		slog.Bool("divide", s.cfg.Align.Divide),
		slog.Float64("gap_open", s.cfg.Align.GapOpen),
		slog.Float64("gap_extension", s.cfg.Align.GapExtension),
	)
	start := time.Now()
	script, err := aligner.AlignSequences(a, b)
	elapsed := time.Since(start)
	rec.ObserveRun(elapsed, script, err)
	if err != nil {
		s.logger.Error("alignment failed", slog.Any("error", err))
		return nil, err
	}
	s.logger.Info("aligned",
		slog.Duration("elapsed", elapsed),
		slog.Int("ops", len(script)),
		slog.Int("gap_opens", script.GapOpens()),
	)

	return script, nil
}

// frameMetric picks the frame distance named in cfg.
func frameMetric(cfg config.Frames, h *frames.Hasher) (align.Metric[*frames.Frame], error) {
	switch cfg.Metric {
	case config.MetricPixel:
		return frames.PixelMetric(), nil
	case config.MetricPerceptual:
		kind, err := metric.ParseHashKind(cfg.HashKind)
		if err != nil {
			return nil, err
		}
		return frames.PerceptualMetric(kind), nil
	case config.MetricEqual:
		return frames.DigestMetric(h), nil
	default:
		return nil, fmt.Errorf("unknown metric %q", cfg.Metric)
	}
}

func (s *session) recorder() *telemetry.Recorder {
	return telemetry.New(prometheus.Labels{"run_id": s.runID})
}

func (s *session) writeMetrics(rec *telemetry.Recorder) error {
	if s.cfg.Metrics == "" {
		return nil
	}
	fh, err := os.Create(s.cfg.Metrics)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err = rec.WriteText(fh); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}

// readLines returns the lines of path without their terminators.
func readLines(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var out []string
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return out, nil
}
