package subm

// State is the lifecycle state of a stored submission.
//
// For a given (author, language, slug) key at most one submission is ever in
// a current state; a new attempt on the key forces the prior current one to
// superseded.
type State string

const (
	StatePending     State = "pending"
	StateSuperseded  State = "superseded"
	StateHibernating State = "hibernating"
	StateCompleted   State = "completed"
)

func (s State) IsValid() bool {
	switch s {
	case StatePending, StateSuperseded, StateHibernating, StateCompleted:
		return true
	default:
		return false
	}
}

// IsCurrent reports whether the state marks the submission as the author's
// live one for its key. Superseded and completed submissions are history.
func (s State) IsCurrent() bool {
	return s == StatePending || s == StateHibernating
}
