// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the status board.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTable redraws the status table in place.
	ModeTable
	// ModeLinear prints one line per status change.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode for out.
// Redrawing only makes sense on a terminal outside CI.
func DetectEnvironment(out *os.File) OutputMode {
	isTTY := out != nil && term.IsTerminal(int(out.Fd())) //nolint:gosec // fd fits in int

	if !isTTY || IsCI() {
		return ModeLinear
	}
	return ModeTable
}

// IsCI reports whether the CI environment variable is set to a truthy value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveMode applies the user's --output-mode flag to auto-detection.
// userFlag should be one of: "auto", "table", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "table":
		return ModeTable
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

// ValidMode reports whether userFlag is an accepted --output-mode value.
func ValidMode(userFlag string) bool {
	switch userFlag {
	case "", "auto", "table", "linear", "ci":
		return true
	}
	return false
}
