package model

// ExtractionStatus represents the lifecycle state of the extraction runner
type ExtractionStatus string

const (
	// ExtractionStatusIdle means no extraction is in flight
	ExtractionStatusIdle ExtractionStatus = "Idle"

	// ExtractionStatusRunning means ffmpeg is converting in the background
	ExtractionStatusRunning ExtractionStatus = "Running"

	// ExtractionStatusCompleted means the last attempt produced an MP3
	ExtractionStatusCompleted ExtractionStatus = "Completed"

	// ExtractionStatusFailed means the last attempt ended with an error
	ExtractionStatusFailed ExtractionStatus = "Failed"
)

// String returns the string representation of ExtractionStatus
func (es ExtractionStatus) String() string {
	return string(es)
}

// IsActive returns true while an extraction is in flight
func (es ExtractionStatus) IsActive() bool {
	return es == ExtractionStatusRunning
}

// IsFinished returns true if the last attempt reached a terminal state
func (es ExtractionStatus) IsFinished() bool {
	return es == ExtractionStatusCompleted || es == ExtractionStatusFailed
}

// StatusTone is the semantic colouring of the status line.
type StatusTone int

const (
	ToneNeutral StatusTone = iota
	ToneBusy
	ToneSuccess
	ToneError
)

// String returns a short name for the tone
func (st StatusTone) String() string {
	switch st {
	case ToneNeutral:
		return "neutral"
	case ToneBusy:
		return "busy"
	case ToneSuccess:
		return "success"
	case ToneError:
		return "error"
	default:
		return "unknown"
	}
}
