package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/framealign/internal/config"
	"github.com/katalvlaran/framealign/internal/logging"
	"github.com/spf13/cobra"
)

// session is the state shared by every subcommand of one invocation.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	runID  string
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &session{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "framealign",
		Short: "Align two frame sequences with an affine-gap edit script",
		Long: "framealign computes a minimum-cost edit script between two recordings. " +
			"Exact frame matches anchor the alignment; the stretches between anchors are " +
			"aligned with Gotoh's affine-gap algorithm.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML or JSON config file")
	pf.Float64("gap-open", 0, "penalty for opening a gap (negative)")
	pf.Float64("gap-extension", 0, "penalty for each further gap element (negative)")
	pf.Int("max-cells", 0, "refuse segments needing more DP cells than this (0 = unlimited)")
	pf.Bool("no-divide", false, "skip hash anchoring and align whole inputs directly")
	pf.String("format", "", "output format: text|json")
	pf.String("metrics-out", "", "write Prometheus text metrics to this file")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("log-format", "", "text|json")

	root.AddCommand(newFramesCmd(s), newLinesCmd(s))

	return root
}

// setup resolves configuration (defaults, file, environment, flags), builds
// the logger and tags the run.
func (s *session) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.FromEnv(&cfg)

	if flags.Changed("gap-open") {
		cfg.Align.GapOpen, _ = flags.GetFloat64("gap-open")
	}
	if flags.Changed("gap-extension") {
		cfg.Align.GapExtension, _ = flags.GetFloat64("gap-extension")
	}
	if flags.Changed("max-cells") {
		cfg.Align.MaxCells, _ = flags.GetInt("max-cells")
	}
	if noDivide, _ := flags.GetBool("no-divide"); noDivide {
		cfg.Align.Divide = false
	}
	overrideString(cmd, "format", &cfg.Output)
	overrideString(cmd, "metrics-out", &cfg.Metrics)
	overrideString(cmd, "log-level", &cfg.Log.Level)
	overrideString(cmd, "log-format", &cfg.Log.Format)
	overrideString(cmd, "metric", &cfg.Frames.Metric)
	overrideString(cmd, "hash-kind", &cfg.Frames.HashKind)
	overrideString(cmd, "cache-dir", &cfg.Frames.CacheDir)
	if flags.Lookup("formats") != nil && flags.Changed("formats") {
		cfg.Frames.Formats, _ = flags.GetStringSlice("formats")
	}

	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(s.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}

	s.cfg = cfg
	s.runID = uuid.NewString()
	s.logger = logger.With(slog.String("run_id", s.runID), slog.String("cmd", cmd.Name()))

	return nil
}

// overrideString copies a string flag into dst when the flag exists on cmd
// and was set explicitly.
func overrideString(cmd *cobra.Command, name string, dst *string) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return
	}
	*dst = f.Value.String()
}
