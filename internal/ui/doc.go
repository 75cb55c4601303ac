package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires drag-and-drop, the selection sliders and the extract action to the
// extraction service and renders its outcome. All UI strings are localized via
// Localization.
