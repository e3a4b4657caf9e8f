// Package config loads, normalizes, and validates cleave configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/cleave/config.toml or a
// project-local cleave.toml. Every value the CLI needs travels through an
// explicit Config record; nothing is read from ambient global state.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
