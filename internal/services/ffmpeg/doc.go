// Package ffmpeg wraps the ffmpeg command line for the two engine
// operations the pipeline needs: segment-muxer splitting and concat-demuxer
// joining (each in stream-copy or re-encode form).
//
// The engine is treated as a black box: success is exit code zero, and all
// diagnostic output is forwarded line by line through the caller's sink.
// Execution sits behind the Executor interface so stage logic can be tested
// with an in-memory fake.
package ffmpeg
