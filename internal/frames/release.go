package frames

import "github.com/katalvlaran/framealign/align"

// ReleaseAfter wraps inner so every frame it was given drops its decoded
// image once the call returns. Wrapped around the segment aligner of a
// divide run, it bounds held images to the segment in flight.
func ReleaseAfter(inner align.Aligner[*Frame]) align.Aligner[*Frame] {
	return align.AlignerFunc[*Frame](func(a, b []*Frame) (align.Script, error) {
		defer release(a)
		defer release(b)

		return inner.Align(a, b)
	})
}

func release(fs []*Frame) {
	for _, f := range fs {
		f.Release()
	}
}
