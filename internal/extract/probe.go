package extract

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/ytget/mp3-extractor/internal/config"
)

// ffprobe arguments for a bare duration value
const (
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "default=noprint_wrappers=1:nokey=1"
)

// Prober reads a container duration with ffprobe
type Prober struct {
	ffprobePath string
	runner      CommandRunner
}

// ProberOption is a functional option for configuring Prober
type ProberOption func(*Prober)

// WithFFprobePath sets a custom ffprobe executable path
func WithFFprobePath(path string) ProberOption {
	return func(p *Prober) {
		p.ffprobePath = path
	}
}

// WithProberCommandRunner sets a custom command runner (for testing)
func WithProberCommandRunner(runner CommandRunner) ProberOption {
	return func(p *Prober) {
		p.runner = runner
	}
}

// NewProber creates a new ffprobe-based duration prober
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		ffprobePath: config.DefaultFFprobeCommand,
		runner:      &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// BuildProbeArgs builds the ffprobe arguments for path
func BuildProbeArgs(path string) []string {
	return []string{
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path,
	}
}

// Duration returns the duration of path in seconds. Any failure yields 0.
func (p *Prober) Duration(ctx context.Context, path string) float64 {
	output, err := p.runner.Output(ctx, p.ffprobePath, BuildProbeArgs(path)...)
	if err != nil {
		log.Printf("ffprobe failed for %s: %v", path, err)
		return 0
	}

	durationStr := strings.TrimSpace(string(output))
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		log.Printf("Failed to parse duration %q for %s: %v", durationStr, path, err)
		return 0
	}

	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		log.Printf("Ignoring unusable duration %v for %s", duration, path)
		return 0
	}

	return duration
}

// Ensure Prober implements DurationProber
var _ DurationProber = (*Prober)(nil)
