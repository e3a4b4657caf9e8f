// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Inspect executes the probing binary and returns a Result with the
// container metadata the planner needs: duration, size, and bitrate.
// EffectiveBitRate applies the size/duration fallback for containers that
// omit an overall bit_rate field. The probe subprocess sits behind a Runner
// so planning logic stays testable without the real binary.
package ffprobe
