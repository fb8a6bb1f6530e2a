package frames

import (
	"path/filepath"
	"sort"
	"strings"
)

// Formats is the set of accepted frame file extensions, lower-case and
// without the leading dot. The zero value accepts nothing.
type Formats map[string]struct{}

// DefaultFormats accepts the containers decodable by the registered image
// decoders: png, jpg, jpeg and gif.
func DefaultFormats() Formats {
	return NewFormats("png", "jpg", "jpeg", "gif")
}

// NewFormats builds a Formats set. Extensions are trimmed, lower-cased and
// stripped of a leading dot; empty entries are ignored.
func NewFormats(exts ...string) Formats {
	f := make(Formats, len(exts))
	for _, e := range exts {
		e = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), ".")
		if e != "" {
			f[e] = struct{}{}
		}
	}

	return f
}

// Accepts reports whether the extension of path is in f.
func (f Formats) Accepts(path string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	_, ok := f[ext]

	return ok
}

// List returns the extensions in f in sorted order.
func (f Formats) List() []string {
	out := make([]string, 0, len(f))
	for e := range f {
		out = append(out, e)
	}
	sort.Strings(out)

	return out
}
