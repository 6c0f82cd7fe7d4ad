package directory

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ResolveProfile Phase = iota
	WarmProfile
	WarmFailed
)

func (p Phase) String() string {
	switch p {
	case ResolveProfile:
		return "resolve_profile"
	case WarmProfile:
		return "warm_profile"
	case WarmFailed:
		return "warm_failed"
	default:
		return ""
	}
}

func warmStartUpdate(step, total int, id string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveProfile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Resolving %s...", id),
	}
}

func warmDoneUpdate(step, total int, id string, source Source) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WarmProfile,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Warmed %s (%s)", id, source),
	}
}

func warmFailedUpdate(step, total int, id string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WarmFailed,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to warm %s: %v", id, err),
	}
}
