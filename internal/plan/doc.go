// Package plan computes segmentation plans: how long each chunk should be
// and whether the cut is a stream copy or a full re-encode.
//
// ByTime takes the duration straight from user input. BySize estimates it
// from the source bitrate under a constant-bitrate assumption; real chunk
// sizes can deviate from the target because bitrate varies across the
// timeline. That inexactness is inherent to the estimation, not a defect.
package plan
