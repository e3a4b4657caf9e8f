// Package services defines the error taxonomy shared by every pipeline
// stage and hosts the external tool clients in its subpackages.
//
// Each failure surfaced to the CLI is tagged with one of the sentinel
// errors below so the dispatcher can report a stable error class while the
// wrapped detail carries the external tool's diagnostic text verbatim.
package services
