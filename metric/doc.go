// Package metric provides ready-made align.Metric implementations: exact
// equality for comparable values, normalised byte and pixel differences, and
// perceptual-hash distances for video frames.
//
// Every metric returns a distance in [0,1], symmetric, 0 for identical
// inputs. The aligners turn it into a similarity of 1 − distance, so a
// distance of exactly 0 is what marks a pair as Perfect.
//
// Perceptual hashing (github.com/corona10/goimagehash) is robust to
// re-encoding noise: two decodes of the same source frame usually land a
// handful of bits apart, while a cut to a different shot flips about half of
// them.
package metric
