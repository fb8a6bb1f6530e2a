// Package sequence provides the resettable cursor abstraction the aligners
// read their input through: a finite, ordered stream that can be iterated,
// rewound to its start, and asked for its total length up front.
//
// The abstraction decouples the alignment engines from whatever produces the
// elements. An in-memory slice rewinds in O(1); a source backed by files or a
// decoder may do more work in Reset and should document that cost.
//
// Unlike a plain iterator, misuse is never undefined: Next past the end
// returns ErrExhausted, and Take/Collect fail with ErrShortSequence when a
// source yields fewer elements than its Size reported.
package sequence
