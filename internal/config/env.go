package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays FRAMEALIGN_* environment variables onto cfg. Values that
// fail to parse are ignored.
func FromEnv(cfg *Config) {
	if v := os.Getenv("FRAMEALIGN_GAP_OPEN"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Align.GapOpen = f
		}
	}
	if v := os.Getenv("FRAMEALIGN_GAP_EXTENSION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Align.GapExtension = f
		}
	}
	if v := os.Getenv("FRAMEALIGN_MAX_CELLS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Align.MaxCells = n
		}
	}
	if v := os.Getenv("FRAMEALIGN_DIVIDE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Align.Divide = b
		}
	}
	if v := os.Getenv("FRAMEALIGN_METRIC"); v != "" {
		cfg.Frames.Metric = v
	}
	if v := os.Getenv("FRAMEALIGN_HASH_KIND"); v != "" {
		cfg.Frames.HashKind = v
	}
	if v := os.Getenv("FRAMEALIGN_FORMATS"); v != "" {
		cfg.Frames.Formats = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Frames.Formats = append(cfg.Frames.Formats, p)
			}
		}
	}
	if v := os.Getenv("FRAMEALIGN_CACHE_DIR"); v != "" {
		cfg.Frames.CacheDir = v
	}
	if v := os.Getenv("FRAMEALIGN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FRAMEALIGN_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
