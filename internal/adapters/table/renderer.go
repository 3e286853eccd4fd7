// Package table provides the interactive status renderer: a table redrawn in
// place on every board change.
package table

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/ui/output"
	"go.trai.ch/upkeep/internal/ui/style"
)

// Title is printed above the table.
const Title = "System Update Status"

// Renderer implements ports.StatusRenderer for interactive terminals.
type Renderer struct {
	mu     sync.Mutex
	out    *termenv.Output
	styler *lipgloss.Renderer
}

// NewRenderer creates a Renderer writing to w. A nil writer means stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return NewRendererWithOutput(output.New(w))
}

// NewRendererWithOutput creates a Renderer on a prepared termenv output.
func NewRendererWithOutput(out *termenv.Output) *Renderer {
	return &Renderer{
		out:    out,
		styler: output.Styler(out),
	}
}

// Render clears the screen and draws the whole board.
func (r *Renderer) Render(tasks []domain.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.out.ClearScreen()

	title := r.styler.NewStyle().Bold(true).Foreground(style.Iris).Render(Title)
	_, err := fmt.Fprintf(r.out, "%s\n%s\n", title, r.build(tasks).String())
	return err
}

func (r *Renderer) build(tasks []domain.TaskStatus) *table.Table {
	cell := r.styler.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styler.NewStyle().Foreground(style.Slate)).
		Headers("Task", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 1 && row < len(tasks):
				return style.StateStyle(r.styler, tasks[row].State).Padding(0, 1)
			default:
				return cell
			}
		})

	for _, task := range tasks {
		t.Row(task.Name, style.StateLabel(task.State))
	}
	return t
}
