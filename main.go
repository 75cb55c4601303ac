package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/mp3-extractor/internal/config"
	"github.com/ytget/mp3-extractor/internal/extract"
	"github.com/ytget/mp3-extractor/internal/platform"
	"github.com/ytget/mp3-extractor/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.mp3-extractor"
	AppName = "MP4 to MP3 Extractor"
)

func main() {
	// Log version information
	fmt.Printf("MP3 Extractor v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	myWindow.SetFixedSize(true)

	// Initialize services
	settings := config.NewSettings()

	// Missing tools are reported when they are first used; here we only note it
	for _, tool := range []string{settings.FFmpegCommand, settings.FFprobeCommand} {
		if resolved, err := platform.LookupTool(tool); err != nil {
			log.Printf("Warning: %v", err)
		} else {
			log.Printf("Using %s", resolved)
		}
	}

	extractSvc := extract.NewService(extract.WithFFmpegPath(settings.FFmpegCommand))
	prober := extract.NewProber(extract.WithFFprobePath(settings.FFprobeCommand))

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, extractSvc, prober)

	// Show and run
	myWindow.ShowAndRun()
}
