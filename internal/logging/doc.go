// Package logging constructs the slog loggers used across the CLI.
//
// Two formats are supported: a compact console format for interactive use
// and JSON for machine consumption. When a log directory is configured the
// same records are mirrored to a file in JSON form.
package logging
