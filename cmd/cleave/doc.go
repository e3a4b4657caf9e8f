// Package main hosts the cleave CLI entrypoint and command graph.
//
// The Cobra-based command tree maps the chunk-time, chunk-size, and concat
// subcommands onto the splitting and joining stages, and centralizes
// configuration resolution and logger setup so subcommands stay thin.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
