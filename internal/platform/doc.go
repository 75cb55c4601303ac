package platform

// Package platform contains OS integration: dropped-path validation, tool
// lookup, MP3 inspection, and revealing files in the system file manager.
