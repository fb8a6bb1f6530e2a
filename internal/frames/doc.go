// Package frames exposes a directory of image files as a resettable frame
// sequence, together with the frame metrics and the cached frame hasher the
// aligners need.
//
// Frame files are ordered by name, so zero-padded numbering (frame_0001.png)
// is expected. Which extensions count as frames is decided by a Formats value
// passed to Open.
//
// Hashing never keeps decoded pixels. Images decoded for a pixel metric are
// held until Release; wrap the segment aligner in ReleaseAfter so a divide
// run holds only the current segment.
package frames
