package model

// Package model defines the session data used across the app: the loaded
// media file, the slider selection, extraction requests/outcomes and the
// runner status enum. Structures are plain values owned by the UI.
