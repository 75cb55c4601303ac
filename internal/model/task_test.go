package model

import (
	"fmt"
	"math"
	"testing"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00"},
		{0.999, "00:00:00"},
		{59.9, "00:00:59"},
		{60, "00:01:00"},
		{90.5, "00:01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323.7, "02:02:03"},
		{360000, "100:00:00"},
	}

	for _, test := range tests {
		result := FormatTime(test.seconds)
		if result != test.expected {
			t.Errorf("FormatTime(%v) = %s, expected %s", test.seconds, result, test.expected)
		}
	}
}

func TestFormatTime_RoundTrip(t *testing.T) {
	durations := []float64{1, 59.5, 120, 3599.99, 5432.1, 86400}

	for _, d := range durations {
		for _, s := range []float64{0, d / 3, d / 2, d * 0.999, d} {
			var h, m, sec int64
			formatted := FormatTime(s)
			if _, err := fmt.Sscanf(formatted, "%d:%d:%d", &h, &m, &sec); err != nil {
				t.Fatalf("failed to parse %q: %v", formatted, err)
			}

			got := h*3600 + m*60 + sec
			want := int64(math.Floor(s))
			if got != want {
				t.Errorf("FormatTime(%v) = %s, reconstructs %d seconds, expected %d", s, formatted, got, want)
			}
		}
	}
}

func TestMediaFile(t *testing.T) {
	mf := NewMediaFile("/videos/clip.mp4")

	if mf.HasDuration() {
		t.Error("New media file should not have a duration")
	}

	if mf.Name() != "clip.mp4" {
		t.Errorf("Expected name clip.mp4, got %s", mf.Name())
	}

	mf.Duration = 120
	if !mf.HasDuration() {
		t.Error("Media file with duration 120 should report HasDuration")
	}

	var empty *MediaFile
	if empty.HasDuration() || empty.Name() != "" {
		t.Error("Nil media file should be empty")
	}
}

func TestExtractionRequest_Directives(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		clip      float64
		full      float64
		wantSeek  bool
		wantLimit bool
	}{
		{"full length", 0, 120, 120, false, false},
		{"trimmed tail", 0, 90, 120, false, true},
		{"trimmed head", 30, 90, 120, true, true},
		{"middle", 30, 60, 120, true, true},
	}

	for _, test := range tests {
		req := &ExtractionRequest{StartTime: test.start, ClipDuration: test.clip, FullDuration: test.full}
		if req.HasSeek() != test.wantSeek {
			t.Errorf("%s: HasSeek() = %v, expected %v", test.name, req.HasSeek(), test.wantSeek)
		}
		if req.HasLimit() != test.wantLimit {
			t.Errorf("%s: HasLimit() = %v, expected %v", test.name, req.HasLimit(), test.wantLimit)
		}
	}
}

func TestExtractionOutcome_Status(t *testing.T) {
	if (ExtractionOutcome{Success: true}).Status() != ExtractionStatusCompleted {
		t.Error("Successful outcome should map to Completed")
	}

	if (ExtractionOutcome{Failure: FailureConversion}).Status() != ExtractionStatusFailed {
		t.Error("Failed outcome should map to Failed")
	}
}

func TestFailureKind_String(t *testing.T) {
	tests := map[FailureKind]string{
		FailureNone:        "none",
		FailureToolMissing: "tool-missing",
		FailureConversion:  "conversion",
		FailureSpawn:       "spawn",
	}

	for kind, expected := range tests {
		if kind.String() != expected {
			t.Errorf("FailureKind(%d).String() = %s, expected %s", int(kind), kind.String(), expected)
		}
	}
}
