package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconVideo    = "📹"
	IconLanguage = "🌐"
)

// Text fragments
const (
	TimeLabelFormat   = "%s (%.0f%%)"
	LabeledTextFormat = "%s: %s"
	DialogTextFormat  = "%s\n%s"
	ErrorTextFormat   = "%s\n\n%s"
)

// Slider range and granularity, in percent
const (
	SliderMin  = 0
	SliderMax  = 100
	SliderStep = 1
)

// Layout sizing
const (
	DropAreaHeight     float32 = 80
	DropAreaStroke     float32 = 2
	DropAreaRadius     float32 = 4
	TimeLabelWidth     float32 = 130
	BitrateSelectWidth float32 = 110
	SuccessDialogWidth float32 = 420
)
