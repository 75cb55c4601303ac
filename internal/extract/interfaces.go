package extract

import (
	"context"

	"github.com/ytget/mp3-extractor/internal/model"
)

// Extractor defines the interface for the extraction runner.
type Extractor interface {
	Start(req *model.ExtractionRequest) (<-chan model.ExtractionOutcome, error)
	Status() model.ExtractionStatus
	Reset()
}

// DurationProber returns a media duration in seconds, or 0 if unknown.
type DurationProber interface {
	Duration(ctx context.Context, path string) float64
}

// CommandRunner runs external commands. It allows replacing os/exec in tests.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}
