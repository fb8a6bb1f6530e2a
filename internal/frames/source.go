package frames

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/framealign/sequence"
)

var (
	// ErrNotDir is returned by Open when the path is not a directory.
	ErrNotDir = errors.New("frames: not a directory")

	// ErrNoFormats is returned by Open when the format set is empty.
	ErrNoFormats = errors.New("frames: no accepted formats")
)

// Source is a sequence of the frame files of one directory, ordered by file
// name. The directory is listed once; Reset only rewinds.
type Source struct {
	*sequence.Slice[*Frame]

	dir    string
	frames []*Frame
}

var _ sequence.Resettable[*Frame] = (*Source)(nil)

// Open lists dir and keeps the regular files whose extension formats
// accepts. Subdirectories are not descended into.
func Open(dir string, formats Formats) (*Source, error) {
	if len(formats) == 0 {
		return nil, ErrNoFormats
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() && formats.Accepts(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	out := make([]*Frame, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("frames: %w", err)
		}
		out = append(out, &Frame{
			Index:   len(out),
			Path:    path,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	return &Source{Slice: sequence.FromSlice(out), dir: dir, frames: out}, nil
}

// Dir returns the listed directory.
func (s *Source) Dir() string { return s.dir }

// Frames returns every frame in order. The slice must not be modified.
func (s *Source) Frames() []*Frame { return s.frames }
