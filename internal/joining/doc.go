// Package joining reassembles an ordered set of chunk files into one output
// via the engine's concat demuxer, or via a re-encode pass when chunk
// parameters differ.
//
// Input order is authoritative: explicit file lists are used verbatim, and
// directory listings are filtered by extension and sorted lexicographically.
// Callers are responsible for naming chunks so that lexicographic order
// matches temporal order; nothing here validates that.
package joining
