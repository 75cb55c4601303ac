package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mp3-extractor/internal/config"
	"github.com/ytget/mp3-extractor/internal/extract"
	"github.com/ytget/mp3-extractor/internal/model"
	"github.com/ytget/mp3-extractor/internal/platform"
)

// infoState describes what the video info label currently shows
type infoState int

const (
	infoEmpty infoState = iota
	infoDuration
	infoUnknownDuration
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	extractor    extract.Extractor
	prober       extract.DurationProber

	// Session state, owned by the UI thread
	media          *model.MediaFile
	selection      model.Selection
	syncingSliders bool
	running        bool
	statusKey      string
	statusTone     model.StatusTone
	info           infoState

	// Widgets
	dropTitle      *widget.Label
	dropLabel      *widget.Label
	infoLabel      *widget.Label
	timelineCard   *widget.Card
	startCaption   *widget.Label
	endCaption     *widget.Label
	startSlider    *widget.Slider
	endSlider      *widget.Slider
	startTimeLabel *widget.Label
	endTimeLabel   *widget.Label
	qualityCaption *widget.Label
	bitrateSelect  *widget.Select
	progress       *widget.ProgressBarInfinite
	statusLabel    *widget.Label
	extractBtn     *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, extractor extract.Extractor, prober extract.DurationProber) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.Language)

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		extractor:    extractor,
		prober:       prober,
		selection:    model.NewSelection(),
		statusKey:    KeyDropToBegin,
		statusTone:   model.ToneNeutral,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// The whole window accepts dropped files
	window.SetOnDropped(ui.onDropped)

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Drop area
	ui.dropTitle = widget.NewLabel(ui.localization.GetText(KeyDropTitle))
	ui.dropLabel = widget.NewLabel(ui.localization.GetText(KeyDropHere))
	ui.dropLabel.Alignment = fyne.TextAlignCenter
	ui.dropLabel.Truncation = fyne.TextTruncateEllipsis

	dropBackground := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	dropBackground.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	dropBackground.StrokeWidth = DropAreaStroke
	dropBackground.CornerRadius = DropAreaRadius
	dropBackground.SetMinSize(fyne.NewSize(0, DropAreaHeight))
	dropArea := container.NewStack(dropBackground, container.NewCenter(ui.dropLabel))

	// Video info
	ui.infoLabel = widget.NewLabel("")
	ui.infoLabel.Alignment = fyne.TextAlignCenter

	// Timeline sliders
	ui.startSlider = widget.NewSlider(SliderMin, SliderMax)
	ui.startSlider.Step = SliderStep
	ui.startSlider.Value = ui.selection.Start
	ui.startSlider.OnChanged = ui.onStartChanged

	ui.endSlider = widget.NewSlider(SliderMin, SliderMax)
	ui.endSlider.Step = SliderStep
	ui.endSlider.Value = ui.selection.End
	ui.endSlider.OnChanged = ui.onEndChanged

	ui.startCaption = widget.NewLabel(ui.localization.GetText(KeyStart))
	ui.endCaption = widget.NewLabel(ui.localization.GetText(KeyEnd))
	ui.startTimeLabel = widget.NewLabel(fmt.Sprintf(TimeLabelFormat, model.FormatTime(0), ui.selection.Start))
	ui.endTimeLabel = widget.NewLabel(fmt.Sprintf(TimeLabelFormat, model.FormatTime(0), ui.selection.End))

	startRow := container.NewBorder(nil, nil, ui.startCaption, fixedWidth(ui.startTimeLabel, TimeLabelWidth), ui.startSlider)
	endRow := container.NewBorder(nil, nil, ui.endCaption, fixedWidth(ui.endTimeLabel, TimeLabelWidth), ui.endSlider)
	ui.timelineCard = widget.NewCard("", ui.localization.GetText(KeyTimeline), container.NewVBox(startRow, endRow))

	// Audio quality
	ui.qualityCaption = widget.NewLabel(ui.localization.GetText(KeyAudioQuality))
	ui.bitrateSelect = widget.NewSelect(ui.settings.GetBitrateLabels(), nil)
	ui.bitrateSelect.SetSelected(string(ui.settings.DefaultBitrate))
	qualityRow := container.NewHBox(ui.qualityCaption, fixedWidth(ui.bitrateSelect, BitrateSelectWidth))

	// Progress, visible only while extracting
	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Stop()
	ui.progress.Hide()

	// Status line
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	// Extract button stays disabled until a video with a known duration is loaded
	ui.extractBtn = widget.NewButton(ui.localization.GetText(KeyExtractAudio), ui.onExtractClick)
	ui.extractBtn.Importance = widget.HighImportance
	ui.extractBtn.Disable()

	content := container.NewVBox(
		ui.dropTitle,
		dropArea,
		ui.infoLabel,
		ui.timelineCard,
		qualityRow,
		ui.progress,
		ui.statusLabel,
		container.NewCenter(ui.extractBtn),
	)

	ui.window.SetContent(container.NewPadded(content))

	ui.renderInfo()
	ui.renderStatus()

	log.Printf("UI setup completed successfully")
}

// fixedWidth wraps obj so that it keeps at least the given width
func fixedWidth(obj fyne.CanvasObject, width float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(width, 0))
	return container.NewStack(spacer, obj)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))

	options := ui.settings.GetLanguageOptions()
	codes := make([]string, 0, len(options))
	for code := range options {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(options[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.settings.Language == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile)),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change for the current session
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.Language = langCode

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.dropTitle.SetText(ui.localization.GetText(KeyDropTitle))
	if ui.media == nil {
		ui.dropLabel.SetText(ui.localization.GetText(KeyDropHere))
	}
	ui.timelineCard.SetSubTitle(ui.localization.GetText(KeyTimeline))
	ui.startCaption.SetText(ui.localization.GetText(KeyStart))
	ui.endCaption.SetText(ui.localization.GetText(KeyEnd))
	ui.qualityCaption.SetText(ui.localization.GetText(KeyAudioQuality))
	ui.extractBtn.SetText(ui.localization.GetText(KeyExtractAudio))

	ui.renderInfo()
	ui.renderStatus()
}

// onDropped handles files dropped onto the window; only the first one is used
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}

	if len(uris) > 1 {
		log.Printf("Received %d dropped files, using the first one", len(uris))
	}

	ui.handleDrop(uris[0].Path())
}

// handleDrop validates a dropped path and loads it. An invalid drop leaves the
// current file and selection untouched.
func (ui *RootUI) handleDrop(raw string) {
	path := platform.NormalizeDroppedPath(raw)
	log.Printf("Processing dropped file: %s", path)

	if err := platform.ValidateDroppedFile(path, ui.settings.InputExtension); err != nil {
		log.Printf("Rejected dropped file: %v", err)
		if errors.Is(err, platform.ErrFileNotFound) {
			ui.showError(ui.localization.GetText(KeyFileDoesNotExist))
		} else {
			ui.showError(ui.localization.GetText(KeyPleaseDropMP4))
		}
		return
	}

	ui.loadMedia(path)
}

// loadMedia replaces the current file and probes its duration synchronously.
// While an extraction is running the button and the busy status are left
// alone; completion re-arms them for whatever file is loaded by then.
func (ui *RootUI) loadMedia(path string) {
	ui.media = model.NewMediaFile(path)
	ui.dropLabel.SetText(IconVideo + " " + ui.media.Name())

	ui.media.Duration = ui.prober.Duration(context.Background(), path)

	if ui.media.HasDuration() {
		log.Printf("Loaded %s: duration=%.3fs", path, ui.media.Duration)
		ui.info = infoDuration
		ui.refreshTimeLabels()
		if !ui.running {
			ui.setStatus(KeyReadyToExtract, model.ToneSuccess)
			ui.extractBtn.Enable()
		}
	} else {
		log.Printf("Could not detect duration of %s", path)
		ui.info = infoUnknownDuration
		ui.resetTimeLabels()
		if !ui.running {
			ui.setStatus(KeyErrorLoadingVideo, model.ToneError)
			ui.extractBtn.Disable()
		}
	}

	ui.renderInfo()
}

// onStartChanged handles start slider movement
func (ui *RootUI) onStartChanged(value float64) {
	if ui.syncingSliders {
		return
	}
	ui.selection.SetStart(value)
	ui.syncSliders()
	ui.refreshTimeLabels()
}

// onEndChanged handles end slider movement
func (ui *RootUI) onEndChanged(value float64) {
	if ui.syncingSliders {
		return
	}
	ui.selection.SetEnd(value)
	ui.syncSliders()
	ui.refreshTimeLabels()
}

// syncSliders pushes the clamped selection back into both sliders without
// re-entering the change handlers
func (ui *RootUI) syncSliders() {
	ui.syncingSliders = true
	defer func() { ui.syncingSliders = false }()

	if ui.startSlider.Value != ui.selection.Start {
		ui.startSlider.SetValue(ui.selection.Start)
	}
	if ui.endSlider.Value != ui.selection.End {
		ui.endSlider.SetValue(ui.selection.End)
	}
}

// refreshTimeLabels renders the selection as timestamps of the loaded video
func (ui *RootUI) refreshTimeLabels() {
	if !ui.media.HasDuration() {
		return
	}

	duration := ui.media.Duration
	ui.startTimeLabel.SetText(fmt.Sprintf(TimeLabelFormat, model.FormatTime(ui.selection.StartTime(duration)), ui.selection.Start))
	ui.endTimeLabel.SetText(fmt.Sprintf(TimeLabelFormat, model.FormatTime(ui.selection.EndTime(duration)), ui.selection.End))
}

// resetTimeLabels shows the selection without timestamps of a previous file
func (ui *RootUI) resetTimeLabels() {
	ui.startTimeLabel.SetText(fmt.Sprintf(TimeLabelFormat, model.FormatTime(0), ui.selection.Start))
	ui.endTimeLabel.SetText(fmt.Sprintf(TimeLabelFormat, model.FormatTime(0), ui.selection.End))
}

// onExtractClick validates the loaded file and hands the extraction to the service
func (ui *RootUI) onExtractClick() {
	if ui.media == nil {
		ui.showError(ui.localization.GetText(KeyPleaseDropMP4))
		return
	}

	// The file may have been moved or deleted since it was dropped
	if !platform.FileExists(ui.media.Path) {
		log.Printf("Input file vanished: %s", ui.media.Path)
		ui.showError(ui.localization.GetText(KeyInputDoesNotExist))
		return
	}

	bitrate := ui.settings.NormalizeBitrate(ui.bitrateSelect.Selected)
	req := extract.NewRequest(ui.media, ui.selection, bitrate, ui.settings)

	done, err := ui.extractor.Start(req)
	if err != nil {
		log.Printf("Failed to start extraction: %v", err)
		switch {
		case errors.Is(err, extract.ErrInputMissing):
			ui.showError(ui.localization.GetText(KeyInputDoesNotExist))
		case errors.Is(err, extract.ErrAlreadyRunning):
			ui.showError(ui.localization.GetText(KeyExtractionInFlight))
		default:
			ui.showError(err.Error())
		}
		return
	}

	log.Printf("Extraction %s started: %s -> %s", req.ID, req.InputPath, req.OutputPath)

	ui.running = true
	ui.setStatus(KeyExtracting, model.ToneBusy)
	ui.extractBtn.Disable()
	ui.progress.Show()
	ui.progress.Start()

	go ui.awaitOutcome(done)
}

// awaitOutcome waits off the UI thread and marshals the outcome back onto it
func (ui *RootUI) awaitOutcome(done <-chan model.ExtractionOutcome) {
	outcome, ok := <-done
	if !ok {
		return
	}

	fyne.Do(func() {
		ui.onExtractionComplete(outcome)
	})
}

// onExtractionComplete renders a terminal outcome and re-arms the extract button
func (ui *RootUI) onExtractionComplete(outcome model.ExtractionOutcome) {
	ui.running = false
	ui.progress.Stop()
	ui.progress.Hide()
	ui.extractor.Reset()

	// A file dropped during the run may have no usable duration
	if ui.media.HasDuration() {
		ui.extractBtn.Enable()
	}

	if outcome.Success {
		ui.setStatus(KeyExtractionComplete, model.ToneSuccess)
		ui.showSuccess(outcome)
		return
	}

	ui.setStatus(KeyExtractionFailed, model.ToneError)
	ui.showError(fmt.Sprintf(ErrorTextFormat, ui.localization.GetText(KeyFailedToExtract), outcome.ErrorText))
}

// showSuccess shows the produced file with an option to reveal it
func (ui *RootUI) showSuccess(outcome model.ExtractionOutcome) {
	message := fmt.Sprintf(DialogTextFormat, ui.localization.GetText(KeyExtractedTo), outcome.OutputPath)
	if outcome.AudioDuration > 0 {
		length := fmt.Sprintf(LabeledTextFormat, ui.localization.GetText(KeyAudioLength), model.FormatTime(outcome.AudioDuration.Seconds()))
		message = fmt.Sprintf(DialogTextFormat, message, length)
	}

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapBreak

	outputPath := outcome.OutputPath
	successDialog := dialog.NewCustomConfirm(
		ui.localization.GetText(KeySuccess),
		ui.localization.GetText(KeyShowInFolder),
		ui.localization.GetText(KeyOK),
		label,
		func(reveal bool) {
			if reveal {
				ui.onRevealFile(outputPath)
			}
		},
		ui.window,
	)
	successDialog.Resize(fyne.NewSize(SuccessDialogWidth, successDialog.MinSize().Height))
	successDialog.Show()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	log.Printf("onRevealFile called for path: %s", filePath)

	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.showError(ui.localization.GetText(KeyErrorOpeningFolder) + ": " + err.Error())
	}
}

// showError shows a blocking error dialog
func (ui *RootUI) showError(message string) {
	dialog.ShowError(errors.New(message), ui.window)
}

// setStatus updates the status line
func (ui *RootUI) setStatus(key string, tone model.StatusTone) {
	ui.statusKey = key
	ui.statusTone = tone
	ui.renderStatus()
}

// renderStatus draws the status line in the current language
func (ui *RootUI) renderStatus() {
	ui.statusLabel.Importance = toneImportance(ui.statusTone)
	ui.statusLabel.SetText(ui.localization.GetText(ui.statusKey))
}

// renderInfo draws the video info line in the current language
func (ui *RootUI) renderInfo() {
	switch ui.info {
	case infoDuration:
		ui.infoLabel.Importance = widget.MediumImportance
		ui.infoLabel.SetText(fmt.Sprintf(LabeledTextFormat, ui.localization.GetText(KeyDuration), model.FormatTime(ui.media.Duration)))
	case infoUnknownDuration:
		ui.infoLabel.Importance = widget.DangerImportance
		ui.infoLabel.SetText(ui.localization.GetText(KeyCouldNotDetect))
	default:
		ui.infoLabel.Importance = widget.LowImportance
		ui.infoLabel.SetText(ui.localization.GetText(KeyNoFileLoaded))
	}
}
