package extract

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/mp3-extractor/internal/config"
	"github.com/ytget/mp3-extractor/internal/model"
)

// FFmpeg constants for audio extraction
const (
	OverwriteFlag = "-y"
	SeekFlag      = "-ss"
	InputFlag     = "-i"
	DurationFlag  = "-t"
	NoVideoFlag   = "-vn"
	AudioCodecArg = "-acodec"
	BitrateArg    = "-b:a"

	// AudioCodec is the MP3 encoder shipped with ffmpeg
	AudioCodec = "libmp3lame"

	TaskIDPrefix = "extract-"
)

// NewRequest builds an extraction request for the current selection
func NewRequest(media *model.MediaFile, sel model.Selection, bitrate config.Bitrate, settings *config.Settings) *model.ExtractionRequest {
	return &model.ExtractionRequest{
		ID:           generateTaskID(),
		InputPath:    media.Path,
		StartTime:    sel.StartTime(media.Duration),
		ClipDuration: sel.ClipDuration(media.Duration),
		FullDuration: media.Duration,
		Bitrate:      string(bitrate),
		OutputPath:   OutputPathFor(media.Path, settings.OutputSuffix, settings.OutputExtension),
	}
}

// OutputPathFor returns <dir>/<stem><suffix><ext> next to inputPath
func OutputPathFor(inputPath, suffix, ext string) string {
	dir := filepath.Dir(inputPath)
	name := filepath.Base(inputPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, stem+suffix+ext)
}

// BuildArgs builds the ffmpeg command arguments for req
func BuildArgs(req *model.ExtractionRequest) []string {
	args := []string{OverwriteFlag}

	// Seek before the input for fast positioning
	if req.HasSeek() {
		args = append(args, SeekFlag, FormatSeconds(req.StartTime))
	}

	args = append(args, InputFlag, req.InputPath)

	// Full-length selections pass through without a limit
	if req.HasLimit() {
		args = append(args, DurationFlag, FormatSeconds(req.ClipDuration))
	}

	return append(args,
		NoVideoFlag,
		AudioCodecArg, AudioCodec,
		BitrateArg, req.Bitrate,
		req.OutputPath,
	)
}

// DryRun returns the ffmpeg command line without executing it
func DryRun(ffmpegPath string, req *model.ExtractionRequest) string {
	return fmt.Sprintf("%s %s", ffmpegPath, strings.Join(BuildArgs(req), " "))
}

// FormatSeconds formats seconds in the shortest decimal form ffmpeg accepts
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
