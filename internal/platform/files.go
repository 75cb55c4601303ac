package platform

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// Dropped path decorations
const (
	FileURIPrefix = "file://"
	BraceOpen     = "{"
	BraceClose    = "}"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Validation errors for dropped files
var (
	ErrEmptyPath     = errors.New("file path is empty")
	ErrWrongFileType = errors.New("unsupported file type")
	ErrFileNotFound  = errors.New("file does not exist")
)

// NormalizeDroppedPath strips decorations some desktops add to dropped paths:
// surrounding whitespace, {braces} around paths with spaces, and file:// URIs.
func NormalizeDroppedPath(raw string) string {
	path := strings.TrimSpace(raw)
	path = strings.TrimPrefix(path, BraceOpen)
	path = strings.TrimSuffix(path, BraceClose)

	if strings.HasPrefix(path, FileURIPrefix) {
		if parsed, err := url.Parse(path); err == nil && parsed.Path != "" {
			path = parsed.Path
		} else {
			path = strings.TrimPrefix(path, FileURIPrefix)
		}
	}

	return path
}

// HasExtension reports whether path ends with ext, ignoring case
func HasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// FileExists returns true if a regular file or directory exists at path
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ValidateDroppedFile checks the extension first, then existence
func ValidateDroppedFile(path, ext string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if !HasExtension(path, ext) {
		return fmt.Errorf("%w: %s", ErrWrongFileType, filepath.Base(path))
	}

	if !FileExists(path) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	return nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if !FileExists(filePath) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return openFileInFinderMacOS(absPath)
	case OSWindows:
		return openFileInExplorerWindows(absPath)
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInFinderMacOS opens file in Finder on macOS with selection
func openFileInFinderMacOS(filePath string) error {
	cmd := exec.Command(OpenCommand, MacOSSelectFlag, filePath)
	return cmd.Run()
}

// openFileInExplorerWindows opens file in Explorer on Windows with selection
func openFileInExplorerWindows(filePath string) error {
	cmd := exec.Command(ExplorerCommand, WindowsSelectParam, filePath)
	return cmd.Run()
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dir)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dir)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
