package extract

// Package extract wraps ffprobe and ffmpeg: it probes video duration, builds the
// audio extraction command line, and runs a single conversion off the UI thread,
// reporting the outcome through a channel.
