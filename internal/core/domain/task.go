package domain

// TaskState is the lifecycle state of one ecosystem task on the status board.
type TaskState string

const (
	// StateNotStarted is the initial state of every registered task.
	StateNotStarted TaskState = "not_started"
	// StateInProgress indicates the ecosystem update is running.
	StateInProgress TaskState = "in_progress"
	// StateDone indicates the ecosystem update finished successfully.
	StateDone TaskState = "done"
	// StateFailed indicates the ecosystem update failed or was interrupted.
	StateFailed TaskState = "failed"
	// StateSkipped indicates the ecosystem was unavailable or declined.
	StateSkipped TaskState = "skipped"
)

// allowedTransitions lists the legal successors of each non-terminal state.
var allowedTransitions = map[TaskState][]TaskState{
	StateNotStarted: {StateInProgress, StateSkipped},
	StateInProgress: {StateDone, StateFailed},
}

// IsTerminal reports whether no transition may leave the state.
func (s TaskState) IsTerminal() bool {
	switch s {
	case StateDone, StateFailed, StateSkipped:
		return true
	default:
		return false
	}
}

// CanTransition reports whether moving from s to next is legal.
func (s TaskState) CanTransition(next TaskState) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the human-readable name of the state.
func (s TaskState) Label() string {
	switch s {
	case StateNotStarted:
		return "Not Started"
	case StateInProgress:
		return "In Progress"
	case StateDone:
		return "Done"
	case StateFailed:
		return "Failed"
	case StateSkipped:
		return "Skipped"
	default:
		return string(s)
	}
}

// TaskStatus is a point-in-time view of one task.
type TaskStatus struct {
	Name  string
	State TaskState
}

// Task names, in the order they appear on the status board.
const (
	TaskHomebrew = "Homebrew"
	TaskPython   = "Python"
	TaskAPT      = "APT"
	TaskRuby     = "Ruby"
	TaskGit      = "Git"
	TaskApple    = "Apple Updates"
)
