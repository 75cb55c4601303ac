package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/tcolgate/mp3"
)

// ErrToolNotFound is returned when an external binary is not on PATH
var ErrToolNotFound = errors.New("tool not found")

// LookupTool resolves an external binary such as ffmpeg on PATH
func LookupTool(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return path, nil
}

// MP3Duration measures an MP3 file by walking its frame headers
func MP3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var (
		frame   mp3.Frame
		skipped int
		total   time.Duration
		frames  int
	)
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("failed to decode mp3 frame %d: %w", frames, err)
		}
		total += frame.Duration()
		frames++
	}

	if frames == 0 {
		return 0, fmt.Errorf("no mp3 frames found in %s", path)
	}

	return total, nil
}
