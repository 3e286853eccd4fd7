// Package status tracks the lifecycle of every ecosystem task and redraws the
// board whenever a task changes state.
package status

import (
	"sync"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/upkeep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Board is the single source of truth for task states during a run.
// It is safe for concurrent use.
type Board struct {
	mu       sync.Mutex
	renderer ports.StatusRenderer
	order    []string
	states   map[string]domain.TaskState
	history  map[string][]domain.TaskState
	onError  func(error)
}

// NewBoard registers names, in display order, all in not_started.
// Duplicate names are registered once.
func NewBoard(renderer ports.StatusRenderer, names ...string) *Board {
	b := &Board{
		renderer: renderer,
		states:   make(map[string]domain.TaskState, len(names)),
		history:  make(map[string][]domain.TaskState, len(names)),
		onError:  func(error) {},
	}

	for _, name := range names {
		if _, dup := b.states[name]; dup {
			continue
		}
		b.order = append(b.order, name)
		b.states[name] = domain.StateNotStarted
		b.history[name] = []domain.TaskState{domain.StateNotStarted}
	}
	return b
}

// OnRenderError installs a callback for renderer failures. A failed render
// never fails the update that triggered it.
func (b *Board) OnRenderError(fn func(error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onError = fn
}

// Update moves name to state and redraws the board. Unknown tasks and
// transitions the lifecycle forbids are rejected and leave the board as is.
func (b *Board) Update(name string, state domain.TaskState) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.states[name]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownTask, name), "task", name)
	}
	if !current.CanTransition(state) {
		err := zerr.Wrap(domain.ErrInvalidTransition, name+": "+string(current)+" -> "+string(state))
		return zerr.With(err, "task", name)
	}

	b.states[name] = state
	b.history[name] = append(b.history[name], state)
	b.renderLocked()
	return nil
}

// Get returns the state of name, or not_started for a task the board does
// not know.
func (b *Board) Get(name string) domain.TaskState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.states[name]; ok {
		return s
	}
	return domain.StateNotStarted
}

// Render redraws the board without changing it.
func (b *Board) Render() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renderLocked()
}

// Snapshot returns every task in registration order.
func (b *Board) Snapshot() []domain.TaskStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// History returns the states name went through, oldest first.
func (b *Board) History(name string) []domain.TaskState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.TaskState(nil), b.history[name]...)
}

// FailInProgress marks every in_progress task as failed and returns their
// names. It is used when a run is interrupted.
func (b *Board) FailInProgress() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var failed []string
	for _, name := range b.order {
		if b.states[name] != domain.StateInProgress {
			continue
		}
		b.states[name] = domain.StateFailed
		b.history[name] = append(b.history[name], domain.StateFailed)
		failed = append(failed, name)
	}
	if len(failed) > 0 {
		b.renderLocked()
	}
	return failed
}

func (b *Board) snapshotLocked() []domain.TaskStatus {
	tasks := make([]domain.TaskStatus, len(b.order))
	for i, name := range b.order {
		tasks[i] = domain.TaskStatus{Name: name, State: b.states[name]}
	}
	return tasks
}

// renderLocked must be called with b.mu held so renders happen in update order.
func (b *Board) renderLocked() {
	if b.renderer == nil {
		return
	}
	if err := b.renderer.Render(b.snapshotLocked()); err != nil {
		b.onError(err)
	}
}
