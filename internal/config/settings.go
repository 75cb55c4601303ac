package config

// Bitrate is an MP3 output bitrate accepted by ffmpeg's -b:a flag
type Bitrate string

const (
	Bitrate128 Bitrate = "128k"
	Bitrate192 Bitrate = "192k"
	Bitrate256 Bitrate = "256k"
	Bitrate320 Bitrate = "320k"
)

// Tool and file naming defaults
const (
	DefaultFFmpegCommand   = "ffmpeg"
	DefaultFFprobeCommand  = "ffprobe"
	DefaultBitrate         = Bitrate192
	DefaultOutputSuffix    = "_mp3extracted"
	DefaultOutputExtension = ".mp3"
	DefaultInputExtension  = ".mp4"
	DefaultLanguage        = "system"
)

// Window geometry
const (
	WindowWidth  = 600
	WindowHeight = 450
)

// Settings holds the configuration of a single session. Nothing is persisted:
// every run starts from the defaults.
type Settings struct {
	FFmpegCommand   string
	FFprobeCommand  string
	DefaultBitrate  Bitrate
	OutputSuffix    string
	OutputExtension string
	InputExtension  string
	Language        string
}

// NewSettings creates settings populated with defaults
func NewSettings() *Settings {
	return &Settings{
		FFmpegCommand:   DefaultFFmpegCommand,
		FFprobeCommand:  DefaultFFprobeCommand,
		DefaultBitrate:  DefaultBitrate,
		OutputSuffix:    DefaultOutputSuffix,
		OutputExtension: DefaultOutputExtension,
		InputExtension:  DefaultInputExtension,
		Language:        DefaultLanguage,
	}
}

// GetBitrateOptions returns available bitrates, lowest first
func (s *Settings) GetBitrateOptions() []Bitrate {
	return []Bitrate{Bitrate128, Bitrate192, Bitrate256, Bitrate320}
}

// GetBitrateLabels returns bitrate options as plain strings for select widgets
func (s *Settings) GetBitrateLabels() []string {
	options := s.GetBitrateOptions()
	labels := make([]string, 0, len(options))
	for _, b := range options {
		labels = append(labels, string(b))
	}
	return labels
}

// IsValidBitrate reports whether value is one of the offered bitrates
func (s *Settings) IsValidBitrate(value string) bool {
	for _, b := range s.GetBitrateOptions() {
		if string(b) == value {
			return true
		}
	}
	return false
}

// NormalizeBitrate returns value as a Bitrate, or the default if it is not offered
func (s *Settings) NormalizeBitrate(value string) Bitrate {
	if s.IsValidBitrate(value) {
		return Bitrate(value)
	}
	return s.DefaultBitrate
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
