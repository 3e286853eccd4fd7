// Package linear provides a line-per-change status renderer for CI and piped output.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/ui/output"
	"go.trai.ch/upkeep/internal/ui/style"
)

// Renderer implements ports.StatusRenderer for non-interactive environments.
// It prints one "[task] label" line for every task whose state changed since
// the previous render.
type Renderer struct {
	out    *termenv.Output
	styler *lipgloss.Renderer

	mu   sync.Mutex
	last map[string]domain.TaskState
}

// NewRenderer creates a Renderer writing to w. A nil writer means stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	out := output.NewWithProfile(w, output.ColorProfileANSI)

	return &Renderer{
		out:    out,
		styler: output.Styler(out),
		last:   make(map[string]domain.TaskState),
	}
}

// Render prints the tasks whose state differs from the last render.
func (r *Renderer) Render(tasks []domain.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range tasks {
		if prev, seen := r.last[task.Name]; seen && prev == task.State {
			continue
		}
		r.last[task.Name] = task.State

		prefix := r.styler.NewStyle().Faint(true).Render("[" + task.Name + "]")
		label := style.StateStyle(r.styler, task.State).Render(style.StateLabel(task.State))
		if _, err := fmt.Fprintf(r.out, "%s %s\n", prefix, label); err != nil {
			return err
		}
	}

	return nil
}
