package plan

import (
	"fmt"

	"cleave/internal/services"
	"cleave/internal/timeutil"
)

// Mode selects how the engine cuts or joins media.
type Mode string

const (
	// ModeCopy transfers encoded streams without re-encoding. Cut points
	// snap to the nearest preceding keyframe, so chunk boundaries can miss
	// the requested time by up to one keyframe interval.
	ModeCopy Mode = "copy"
	// ModeReEncode decodes and re-encodes, producing exact boundaries at
	// the cost of speed and potential quality change.
	ModeReEncode Mode = "reencode"
)

// minSegmentSeconds is the absolute floor for estimated segment durations.
const minSegmentSeconds = 1.0

// Plan describes one segmentation run.
type Plan struct {
	SegmentSeconds float64
	Mode           Mode
}

// ByTime builds a plan from a user-supplied duration, given either as raw
// seconds or an HH:MM:SS literal. The source file is never consulted.
func ByTime(value string, mode Mode) (Plan, error) {
	seconds, err := timeutil.ParseSeconds(value)
	if err != nil {
		return Plan{}, services.Wrap(services.ErrUsage, "plan by time", "", err)
	}
	if seconds <= 0 {
		return Plan{}, services.Wrap(services.ErrUsage, "plan by time", fmt.Sprintf("segment time must be positive, got %v", seconds), nil)
	}
	return Plan{SegmentSeconds: seconds, Mode: mode}, nil
}

// SizeRequest carries the inputs for size-based planning.
type SizeRequest struct {
	TargetMB   float64
	BitrateBPS int64
	// MinSeconds and MaxSeconds clamp the estimate when positive.
	MinSeconds float64
	MaxSeconds float64
}

// BySize estimates the segment duration that yields chunks of roughly
// TargetMB at the source bitrate. The whole-file bitrate stands in for every
// chunk's bitrate, so the result is an approximation.
func BySize(req SizeRequest, mode Mode) (Plan, error) {
	if req.TargetMB <= 0 {
		return Plan{}, services.Wrap(services.ErrPlanning, "plan by size", fmt.Sprintf("target size must be positive, got %vMB", req.TargetMB), nil)
	}
	if req.BitrateBPS <= 0 {
		return Plan{}, services.Wrap(services.ErrPlanning, "plan by size", fmt.Sprintf("source bitrate must be positive, got %d bps", req.BitrateBPS), nil)
	}

	targetBits := req.TargetMB * 8 * 1024 * 1024
	seconds := targetBits / float64(req.BitrateBPS)

	if req.MinSeconds > 0 && seconds < req.MinSeconds {
		seconds = req.MinSeconds
	}
	if req.MaxSeconds > 0 && seconds > req.MaxSeconds {
		seconds = req.MaxSeconds
	}
	if seconds < minSegmentSeconds {
		seconds = minSegmentSeconds
	}

	return Plan{SegmentSeconds: seconds, Mode: mode}, nil
}
