package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mp3-extractor/internal/config"
	"github.com/ytget/mp3-extractor/internal/extract"
	"github.com/ytget/mp3-extractor/internal/model"
)

type fakeExtractor struct {
	mu       sync.Mutex
	requests []*model.ExtractionRequest
	done     chan model.ExtractionOutcome
	startErr error
	resets   int
}

func (f *fakeExtractor) Start(req *model.ExtractionRequest) (<-chan model.ExtractionOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return nil, f.startErr
	}
	f.requests = append(f.requests, req)
	f.done = make(chan model.ExtractionOutcome, 1)
	return f.done, nil
}

func (f *fakeExtractor) Status() model.ExtractionStatus {
	return model.ExtractionStatusIdle
}

func (f *fakeExtractor) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

func (f *fakeExtractor) started() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeProber struct {
	duration float64
	paths    []string
}

func (f *fakeProber) Duration(_ context.Context, path string) float64 {
	f.paths = append(f.paths, path)
	return f.duration
}

func newTestUI(t *testing.T, duration float64) (*RootUI, *fakeExtractor, fyne.Window) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	extractor := &fakeExtractor{}
	ui := NewRootUI(w, config.NewSettings(), extractor, &fakeProber{duration: duration})
	return ui, extractor, w
}

func (f *fakeExtractor) resetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resets
}

// collectText gathers the visible texts of obj and its children
func collectText(obj fyne.CanvasObject, out *[]string) {
	switch o := obj.(type) {
	case *widget.Label:
		*out = append(*out, o.Text)
	case *canvas.Text:
		*out = append(*out, o.Text)
	case *fyne.Container:
		for _, child := range o.Objects {
			collectText(child, out)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(o).Objects() {
			collectText(child, out)
		}
	}
}

func dialogText(w fyne.Window) string {
	top := w.Canvas().Overlays().Top()
	if top == nil {
		return ""
	}
	var texts []string
	collectText(top, &texts)
	return strings.Join(texts, "\n")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for the UI to update")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func createVideo(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui, _, w := newTestUI(t, 120)

	if w.Title() != "MP4 to MP3 Extractor" {
		t.Errorf("Unexpected window title %q", w.Title())
	}

	if !ui.extractBtn.Disabled() {
		t.Error("Expected extract button to be disabled before a file is loaded")
	}

	if ui.statusLabel.Text != "Drop a file to begin" {
		t.Errorf("Unexpected status %q", ui.statusLabel.Text)
	}

	if ui.infoLabel.Text != "No file loaded" {
		t.Errorf("Unexpected info %q", ui.infoLabel.Text)
	}

	if ui.bitrateSelect.Selected != "192k" {
		t.Errorf("Expected default bitrate 192k, got %s", ui.bitrateSelect.Selected)
	}

	if ui.progress.Visible() {
		t.Error("Expected progress bar to be hidden")
	}

	if ui.startSlider.Value != 0 || ui.endSlider.Value != 100 {
		t.Errorf("Expected sliders at 0/100, got %v/%v", ui.startSlider.Value, ui.endSlider.Value)
	}
}

func TestHandleDrop_AcceptsUppercaseExtension(t *testing.T) {
	ui, _, _ := newTestUI(t, 120)
	path := createVideo(t, "CLIP.MP4")

	ui.handleDrop(path)

	if ui.media == nil || ui.media.Path != path {
		t.Fatalf("Expected %s to be loaded, got %+v", path, ui.media)
	}

	if ui.dropLabel.Text != IconVideo+" CLIP.MP4" {
		t.Errorf("Unexpected drop label %q", ui.dropLabel.Text)
	}

	if ui.infoLabel.Text != "Duration: 00:02:00" {
		t.Errorf("Unexpected info %q", ui.infoLabel.Text)
	}

	if ui.statusLabel.Text != "Ready to extract" || ui.statusLabel.Importance != widget.SuccessImportance {
		t.Errorf("Unexpected status %q (%v)", ui.statusLabel.Text, ui.statusLabel.Importance)
	}

	if ui.extractBtn.Disabled() {
		t.Error("Expected extract button to be enabled")
	}

	if ui.endTimeLabel.Text != "00:02:00 (100%)" {
		t.Errorf("Unexpected end label %q", ui.endTimeLabel.Text)
	}
}

func TestOnDropped_UsesFirstURI(t *testing.T) {
	ui, _, _ := newTestUI(t, 60)
	first := createVideo(t, "first.mp4")
	second := createVideo(t, "second.mp4")

	ui.onDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI(first), storage.NewFileURI(second)})

	if ui.media == nil || ui.media.Path != first {
		t.Errorf("Expected first dropped file to be loaded, got %+v", ui.media)
	}
}

func TestHandleDrop_RejectsWithoutStateChange(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"wrong extension", func(t *testing.T) string { return createVideo(t, "clip.mov") }},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone.mp4") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, _, w := newTestUI(t, 120)
			loaded := createVideo(t, "loaded.mp4")
			ui.handleDrop(loaded)
			ui.onStartChanged(10)

			ui.handleDrop(tt.path(t))

			if ui.media.Path != loaded {
				t.Errorf("Expected %s to stay loaded, got %s", loaded, ui.media.Path)
			}

			if ui.selection.Start != 10 {
				t.Errorf("Expected selection to be kept, got %+v", ui.selection)
			}

			if w.Canvas().Overlays().Top() == nil {
				t.Error("Expected an error dialog")
			}
		})
	}
}

func TestLoadMedia_UnknownDuration(t *testing.T) {
	ui, _, _ := newTestUI(t, 0)

	ui.handleDrop(createVideo(t, "broken.mp4"))

	if ui.infoLabel.Text != "Could not detect video duration" {
		t.Errorf("Unexpected info %q", ui.infoLabel.Text)
	}

	if ui.statusLabel.Text != "Error loading video" {
		t.Errorf("Unexpected status %q", ui.statusLabel.Text)
	}

	if !ui.extractBtn.Disabled() {
		t.Error("Expected extract button to stay disabled")
	}

	if ui.startTimeLabel.Text != "00:00:00 (0%)" {
		t.Errorf("Expected time labels untouched, got %q", ui.startTimeLabel.Text)
	}
}

func TestLoadMedia_UnknownDurationClearsPreviousTimes(t *testing.T) {
	ui, _, _ := newTestUI(t, 120)
	ui.handleDrop(createVideo(t, "first.mp4"))
	ui.onStartChanged(50)

	if ui.startTimeLabel.Text != "00:01:00 (50%)" {
		t.Fatalf("Unexpected start label %q", ui.startTimeLabel.Text)
	}

	ui.prober.(*fakeProber).duration = 0
	ui.handleDrop(createVideo(t, "broken.mp4"))

	if ui.startTimeLabel.Text != "00:00:00 (50%)" || ui.endTimeLabel.Text != "00:00:00 (100%)" {
		t.Errorf("Expected timestamps cleared, got %q / %q", ui.startTimeLabel.Text, ui.endTimeLabel.Text)
	}
}

func TestHandleDrop_WhileExtracting(t *testing.T) {
	ui, extractor, _ := newTestUI(t, 120)
	ui.handleDrop(createVideo(t, "a.mp4"))
	test.Tap(ui.extractBtn)

	second := createVideo(t, "b.mp4")
	ui.handleDrop(second)

	if ui.media.Path != second {
		t.Errorf("Expected %s to be loaded, got %s", second, ui.media.Path)
	}

	if !ui.extractBtn.Disabled() {
		t.Error("Expected extract button to stay disabled while running")
	}

	if ui.statusLabel.Text != "Extracting audio..." {
		t.Errorf("Expected busy status to be kept, got %q", ui.statusLabel.Text)
	}

	if !ui.progress.Visible() {
		t.Error("Expected progress bar to keep running")
	}

	ui.onExtractionComplete(model.ExtractionOutcome{Success: true, OutputPath: "/videos/a_mp3extracted.mp3"})

	if ui.extractBtn.Disabled() {
		t.Error("Expected extract button to be enabled for the new file")
	}

	close(extractor.done)
}

func TestHandleDrop_UnknownDurationWhileExtracting(t *testing.T) {
	ui, extractor, _ := newTestUI(t, 120)
	ui.handleDrop(createVideo(t, "a.mp4"))
	test.Tap(ui.extractBtn)

	ui.prober.(*fakeProber).duration = 0
	ui.handleDrop(createVideo(t, "broken.mp4"))

	if ui.statusLabel.Text != "Extracting audio..." {
		t.Errorf("Expected busy status to be kept, got %q", ui.statusLabel.Text)
	}

	ui.onExtractionComplete(model.ExtractionOutcome{Success: true, OutputPath: "/videos/a_mp3extracted.mp3"})

	if !ui.extractBtn.Disabled() {
		t.Error("Expected extract button to stay disabled without a duration")
	}

	close(extractor.done)
}

func TestSliders_KeepStartBeforeEnd(t *testing.T) {
	ui, _, _ := newTestUI(t, 100)
	ui.handleDrop(createVideo(t, "clip.mp4"))

	ui.onEndChanged(50)
	ui.onStartChanged(80)

	if ui.selection.Start != 80 || ui.selection.End != 81 {
		t.Fatalf("Expected selection 80/81, got %+v", ui.selection)
	}

	if ui.endSlider.Value != 81 {
		t.Errorf("Expected end slider pushed to 81, got %v", ui.endSlider.Value)
	}

	if ui.startTimeLabel.Text != "00:01:20 (80%)" || ui.endTimeLabel.Text != "00:01:21 (81%)" {
		t.Errorf("Unexpected labels %q / %q", ui.startTimeLabel.Text, ui.endTimeLabel.Text)
	}

	ui.onEndChanged(20)
	if ui.selection.Start != 19 || ui.startSlider.Value != 19 {
		t.Errorf("Expected start pulled to 19, got %+v (slider %v)", ui.selection, ui.startSlider.Value)
	}
}

func TestExtractClick_StartsExtraction(t *testing.T) {
	ui, extractor, _ := newTestUI(t, 120)
	path := createVideo(t, "clip.mp4")
	ui.handleDrop(path)
	ui.onStartChanged(25)
	ui.onEndChanged(75)
	ui.bitrateSelect.SetSelected("320k")

	test.Tap(ui.extractBtn)

	if extractor.started() != 1 {
		t.Fatalf("Expected one extraction to start, got %d", extractor.started())
	}

	req := extractor.requests[0]
	if req.StartTime != 30 || req.ClipDuration != 60 || req.Bitrate != "320k" {
		t.Errorf("Unexpected request %+v", req)
	}

	expectedOutput := filepath.Join(filepath.Dir(path), "clip_mp3extracted.mp3")
	if req.OutputPath != expectedOutput {
		t.Errorf("Expected output %s, got %s", expectedOutput, req.OutputPath)
	}

	if ui.statusLabel.Text != "Extracting audio..." || ui.statusLabel.Importance != widget.HighImportance {
		t.Errorf("Unexpected status %q", ui.statusLabel.Text)
	}

	if !ui.extractBtn.Disabled() {
		t.Error("Expected extract button to be disabled while running")
	}

	if !ui.progress.Visible() {
		t.Error("Expected progress bar to be visible")
	}

	// A second tap on the disabled button is ignored
	test.Tap(ui.extractBtn)
	if extractor.started() != 1 {
		t.Errorf("Expected still one extraction, got %d", extractor.started())
	}

	close(extractor.done)
}

func TestExtractClick_InputVanished(t *testing.T) {
	ui, extractor, w := newTestUI(t, 120)
	path := createVideo(t, "clip.mp4")
	ui.handleDrop(path)

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}

	test.Tap(ui.extractBtn)

	if extractor.started() != 0 {
		t.Error("Expected no extraction to start")
	}

	if ui.extractBtn.Disabled() {
		t.Error("Expected extract button to stay enabled")
	}

	if w.Canvas().Overlays().Top() == nil {
		t.Error("Expected an error dialog")
	}
}

func TestExtractClick_StartRejected(t *testing.T) {
	ui, extractor, _ := newTestUI(t, 120)
	extractor.startErr = extract.ErrAlreadyRunning
	ui.handleDrop(createVideo(t, "clip.mp4"))

	test.Tap(ui.extractBtn)

	if ui.statusLabel.Text != "Ready to extract" {
		t.Errorf("Expected status to stay unchanged, got %q", ui.statusLabel.Text)
	}

	if ui.progress.Visible() {
		t.Error("Expected progress bar to stay hidden")
	}
}

func TestOnExtractionComplete(t *testing.T) {
	tests := []struct {
		name           string
		outcome        model.ExtractionOutcome
		expectedStatus string
		expectedTone   widget.Importance
	}{
		{
			name: "success",
			outcome: model.ExtractionOutcome{
				Success:       true,
				OutputPath:    "/videos/clip_mp3extracted.mp3",
				AudioDuration: time.Minute,
			},
			expectedStatus: "Extraction complete!",
			expectedTone:   widget.SuccessImportance,
		},
		{
			name: "conversion failure",
			outcome: model.ExtractionOutcome{
				Failure:   model.FailureConversion,
				ErrorText: "Invalid data found when processing input",
			},
			expectedStatus: "Extraction failed",
			expectedTone:   widget.DangerImportance,
		},
		{
			name: "tool missing",
			outcome: model.ExtractionOutcome{
				Failure:   model.FailureToolMissing,
				ErrorText: extract.ToolMissingMessage,
			},
			expectedStatus: "Extraction failed",
			expectedTone:   widget.DangerImportance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, extractor, w := newTestUI(t, 120)
			ui.handleDrop(createVideo(t, "clip.mp4"))
			test.Tap(ui.extractBtn)

			ui.onExtractionComplete(tt.outcome)

			if ui.statusLabel.Text != tt.expectedStatus || ui.statusLabel.Importance != tt.expectedTone {
				t.Errorf("Expected status %q, got %q", tt.expectedStatus, ui.statusLabel.Text)
			}

			if ui.extractBtn.Disabled() {
				t.Error("Expected extract button to be re-enabled")
			}

			if ui.progress.Visible() {
				t.Error("Expected progress bar to be hidden")
			}

			if extractor.resets != 1 {
				t.Errorf("Expected extractor to be reset once, got %d", extractor.resets)
			}

			if w.Canvas().Overlays().Top() == nil {
				t.Error("Expected a result dialog")
			}

			close(extractor.done)
		})
	}
}

func TestAwaitOutcome_DeliversOnUIThread(t *testing.T) {
	tests := []struct {
		name           string
		outcome        func(req *model.ExtractionRequest) model.ExtractionOutcome
		expectedStatus string
		wantOutput     bool
		wantText       string
	}{
		{
			name: "success",
			outcome: func(req *model.ExtractionRequest) model.ExtractionOutcome {
				return model.ExtractionOutcome{RequestID: req.ID, Success: true, OutputPath: req.OutputPath}
			},
			expectedStatus: "Extraction complete!",
			wantOutput:     true,
			wantText:       "Audio extracted successfully to:",
		},
		{
			name: "tool missing",
			outcome: func(req *model.ExtractionRequest) model.ExtractionOutcome {
				return model.ExtractionOutcome{
					RequestID: req.ID,
					Failure:   model.FailureToolMissing,
					ErrorText: extract.ToolMissingMessage,
				}
			},
			expectedStatus: "Extraction failed",
			wantOutput:     false,
			wantText:       extract.ToolMissingMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, extractor, w := newTestUI(t, 120)
			ui.handleDrop(createVideo(t, "clip.mp4"))
			test.Tap(ui.extractBtn)

			if extractor.started() != 1 {
				t.Fatalf("Expected one extraction to start, got %d", extractor.started())
			}
			req := extractor.requests[0]

			extractor.done <- tt.outcome(req)
			close(extractor.done)

			waitFor(t, func() bool {
				return extractor.resetCount() == 1 && w.Canvas().Overlays().Top() != nil
			})
			waitFor(t, func() bool { return !ui.extractBtn.Disabled() })

			if ui.statusLabel.Text != tt.expectedStatus {
				t.Errorf("Expected status %q, got %q", tt.expectedStatus, ui.statusLabel.Text)
			}

			text := dialogText(w)
			if !strings.Contains(text, tt.wantText) {
				t.Errorf("Expected dialog to contain %q, got %q", tt.wantText, text)
			}

			if strings.Contains(text, req.OutputPath) != tt.wantOutput {
				t.Errorf("Output path %s shown = %v, want %v (dialog %q)", req.OutputPath, !tt.wantOutput, tt.wantOutput, text)
			}
		})
	}
}

func TestCreateMenu_LanguagesSorted(t *testing.T) {
	_, _, w := newTestUI(t, 120)

	menu := w.MainMenu()
	if menu == nil || len(menu.Items) != 2 {
		t.Fatalf("Expected file and language menus, got %+v", menu)
	}

	var labels []string
	for _, item := range menu.Items[1].Items {
		labels = append(labels, item.Label)
	}

	settings := config.NewSettings()
	options := settings.GetLanguageOptions()
	expected := []string{options["en"], options["pt"], options["ru"], options["system"]}
	if strings.Join(labels, ",") != strings.Join(expected, ",") {
		t.Errorf("Expected languages %v, got %v", expected, labels)
	}
}

func TestOnLanguageChange_RefreshesTexts(t *testing.T) {
	ui, _, w := newTestUI(t, 120)
	ui.handleDrop(createVideo(t, "clip.mp4"))

	ui.onLanguageChange("ru")

	if w.Title() != "Извлечение MP3 из MP4" {
		t.Errorf("Unexpected title %q", w.Title())
	}

	if ui.statusLabel.Text != "Готово к извлечению" {
		t.Errorf("Expected translated status, got %q", ui.statusLabel.Text)
	}

	if ui.infoLabel.Text != "Длительность: 00:02:00" {
		t.Errorf("Expected translated info, got %q", ui.infoLabel.Text)
	}

	if ui.dropLabel.Text != IconVideo+" clip.mp4" {
		t.Errorf("Expected file name to stay in drop area, got %q", ui.dropLabel.Text)
	}

	if ui.settings.Language != "ru" {
		t.Errorf("Expected settings language ru, got %s", ui.settings.Language)
	}
}
