package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/ytget/mp3-extractor/internal/config"
	"github.com/ytget/mp3-extractor/internal/model"
	"github.com/ytget/mp3-extractor/internal/platform"
)

// Diagnostic texts reported to the user
const (
	ToolMissingMessage = "ffmpeg not found. Please install ffmpeg and add it to your PATH"
	UnknownErrorText   = "Unknown error"
)

// Start errors
var (
	ErrAlreadyRunning = errors.New("extraction already in progress")
	ErrInputMissing   = errors.New("input file does not exist")
)

// Service runs one ffmpeg extraction at a time
type Service struct {
	ffmpegPath string
	runner     CommandRunner
	measure    func(path string) (time.Duration, error)

	status      model.ExtractionStatus
	statusMutex sync.RWMutex
}

// ServiceOption is a functional option for configuring Service
type ServiceOption func(*Service)

// WithFFmpegPath sets a custom ffmpeg executable path
func WithFFmpegPath(path string) ServiceOption {
	return func(s *Service) {
		s.ffmpegPath = path
	}
}

// WithCommandRunner sets a custom command runner (for testing)
func WithCommandRunner(runner CommandRunner) ServiceOption {
	return func(s *Service) {
		s.runner = runner
	}
}

// WithDurationMeter sets how the produced MP3 is measured
func WithDurationMeter(measure func(path string) (time.Duration, error)) ServiceOption {
	return func(s *Service) {
		s.measure = measure
	}
}

// NewService creates a new extraction service
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		ffmpegPath: config.DefaultFFmpegCommand,
		runner:     &ExecCommandRunner{},
		measure:    platform.MP3Duration,
		status:     model.ExtractionStatusIdle,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Status returns the current runner state
func (s *Service) Status() model.ExtractionStatus {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()
	return s.status
}

// Reset returns a finished runner to Idle once its outcome has been shown
func (s *Service) Reset() {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()
	if s.status.IsFinished() {
		s.status = model.ExtractionStatusIdle
	}
}

// Start validates req and runs ffmpeg in the background. The returned channel
// receives exactly one outcome and is then closed.
func (s *Service) Start(req *model.ExtractionRequest) (<-chan model.ExtractionOutcome, error) {
	s.statusMutex.Lock()
	defer s.statusMutex.Unlock()

	if s.status.IsActive() {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, req.InputPath)
	}

	// The file may have been moved since it was dropped
	if !platform.FileExists(req.InputPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputMissing, req.InputPath)
	}

	s.status = model.ExtractionStatusRunning

	done := make(chan model.ExtractionOutcome, 1)
	go s.run(req, done)

	return done, nil
}

// run performs the extraction and publishes its outcome
func (s *Service) run(req *model.ExtractionRequest, done chan<- model.ExtractionOutcome) {
	defer close(done)

	log.Printf("Starting extraction %s: %s", req.ID, DryRun(s.ffmpegPath, req))

	outcome := s.execute(context.Background(), req)

	s.statusMutex.Lock()
	s.status = outcome.Status()
	s.statusMutex.Unlock()

	if outcome.Success {
		log.Printf("Extraction %s completed: output=%s audio=%v", req.ID, outcome.OutputPath, outcome.AudioDuration)
	} else {
		log.Printf("Extraction %s failed (%s): %s", req.ID, outcome.Failure, outcome.ErrorText)
	}

	done <- outcome
}

// execute runs ffmpeg to completion and classifies the result
func (s *Service) execute(ctx context.Context, req *model.ExtractionRequest) model.ExtractionOutcome {
	outcome := model.ExtractionOutcome{RequestID: req.ID}

	_, stderr, err := s.runner.Run(ctx, s.ffmpegPath, BuildArgs(req)...)
	outcome.FinishedAt = time.Now()

	var exitErr interface{ ExitCode() int }
	switch {
	case err == nil:
		outcome.Success = true
		outcome.OutputPath = req.OutputPath
		if duration, measureErr := s.measure(req.OutputPath); measureErr != nil {
			log.Printf("Failed to measure %s: %v", req.OutputPath, measureErr)
		} else {
			outcome.AudioDuration = duration
		}
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		outcome.Failure = model.FailureToolMissing
		outcome.ErrorText = ToolMissingMessage
	case errors.As(err, &exitErr):
		outcome.Failure = model.FailureConversion
		outcome.OutputPath = req.OutputPath
		outcome.ErrorText = string(stderr)
		if strings.TrimSpace(outcome.ErrorText) == "" {
			outcome.ErrorText = UnknownErrorText
		}
	default:
		outcome.Failure = model.FailureSpawn
		outcome.ErrorText = err.Error()
	}

	return outcome
}

// Ensure Service implements Extractor
var _ Extractor = (*Service)(nil)
