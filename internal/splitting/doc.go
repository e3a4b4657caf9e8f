// Package splitting drives the engine's segment muxer to cut a source file
// into ordered, sequentially named chunk files.
//
// Chunks follow the {prefix}_{index:03d}{ext} pattern with indices starting
// at zero, so lexicographic filename order matches temporal order for runs
// of up to 1000 chunks. Beyond that the engine widens the field and the
// zero-padding guarantee ends.
package splitting
