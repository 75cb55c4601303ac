package model

import (
	"fmt"
	"math"
	"path/filepath"
	"time"
)

// MediaFile is the video currently loaded into the window
type MediaFile struct {
	Path     string  // absolute path as dropped
	Duration float64 // seconds, 0 if unknown
}

// NewMediaFile creates a media file with an unknown duration
func NewMediaFile(path string) *MediaFile {
	return &MediaFile{Path: path}
}

// HasDuration reports whether the probe returned a usable duration
func (mf *MediaFile) HasDuration() bool {
	return mf != nil && mf.Duration > 0
}

// Name returns the file name without directory
func (mf *MediaFile) Name() string {
	if mf == nil {
		return ""
	}
	return filepath.Base(mf.Path)
}

// ExtractionRequest describes a single ffmpeg run
type ExtractionRequest struct {
	ID           string
	InputPath    string
	StartTime    float64 // seconds from the beginning of the input
	ClipDuration float64 // seconds of audio to keep
	FullDuration float64 // probed duration of the input
	Bitrate      string
	OutputPath   string
}

// HasSeek reports whether the region starts after the beginning of the file
func (r *ExtractionRequest) HasSeek() bool {
	return r.StartTime > 0
}

// HasLimit reports whether the region is shorter than the whole file
func (r *ExtractionRequest) HasLimit() bool {
	return r.ClipDuration < r.FullDuration
}

// FailureKind classifies why an extraction attempt failed
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureToolMissing
	FailureConversion
	FailureSpawn
)

// String returns the failure kind name used in logs
func (fk FailureKind) String() string {
	switch fk {
	case FailureNone:
		return "none"
	case FailureToolMissing:
		return "tool-missing"
	case FailureConversion:
		return "conversion"
	case FailureSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// ExtractionOutcome is the result of one extraction attempt
type ExtractionOutcome struct {
	RequestID     string
	Success       bool
	OutputPath    string        // empty when the tool could not be started
	Failure       FailureKind   // FailureNone on success
	ErrorText     string        // diagnostic text shown to the user
	AudioDuration time.Duration // measured length of the produced MP3, 0 if unknown
	FinishedAt    time.Time
}

// Status maps the outcome onto the runner's terminal state
func (eo ExtractionOutcome) Status() ExtractionStatus {
	if eo.Success {
		return ExtractionStatusCompleted
	}
	return ExtractionStatusFailed
}

// FormatTime returns seconds formatted as HH:MM:SS, truncating fractions
func FormatTime(seconds float64) string {
	total := int64(math.Floor(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
