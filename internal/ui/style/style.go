// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/upkeep/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#06B6D4")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// StateIcon returns the icon drawn next to a task state.
func StateIcon(s domain.TaskState) string {
	switch s {
	case domain.StateInProgress:
		return Dot
	case domain.StateDone:
		return Check
	case domain.StateFailed:
		return Cross
	case domain.StateSkipped:
		return Tilde
	default:
		return Circle
	}
}

// StateLabel returns the icon and label, e.g. "✓ Done".
func StateLabel(s domain.TaskState) string {
	return StateIcon(s) + " " + s.Label()
}

// StateStyle returns the style for a task state, built on r so it honours
// the caller's colour profile.
func StateStyle(r *lipgloss.Renderer, s domain.TaskState) lipgloss.Style {
	st := r.NewStyle()
	switch s {
	case domain.StateInProgress:
		return st.Foreground(Yellow)
	case domain.StateDone:
		return st.Foreground(Green)
	case domain.StateFailed:
		return st.Foreground(Red).Bold(true)
	case domain.StateSkipped:
		return st.Foreground(Slate)
	default:
		return st
	}
}
