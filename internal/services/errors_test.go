package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	underlying := fmt.Errorf("exit status 1")
	err := Wrap(ErrSegmentation, "segment", "ffmpeg failed", underlying)
	if !errors.Is(err, ErrSegmentation) {
		t.Fatalf("expected segmentation marker, got %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected wrapped cause to survive, got %v", err)
	}
	if !strings.Contains(err.Error(), "ffmpeg failed") {
		t.Fatalf("expected detail in message, got %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrPlanning, "plan", "bitrate must be positive", nil)
	if !errors.Is(err, ErrPlanning) {
		t.Fatalf("expected planning marker, got %v", err)
	}
	if strings.Contains(err.Error(), "%!") {
		t.Fatalf("formatting artifact in %q", err.Error())
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "", "", nil)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected usage fallback, got %v", err)
	}
	if !strings.Contains(err.Error(), "pipeline failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}
