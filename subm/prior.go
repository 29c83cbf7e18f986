package subm

// Prior is the read-only view of an attempt's previous submission. A first
// attempt on a key gets the NoPriorSubmission sentinel instead of a nil, so
// callers never null-check before asking about code or state.
type Prior interface {
	Exists() bool
	Code() string
	Language() string
	Slug() string

	// Subm returns the underlying submission, nil for the sentinel.
	Subm() *Submission
}

type priorSubmission struct {
	subm Submission
}

func (p priorSubmission) Exists() bool     { return true }
func (p priorSubmission) Code() string     { return p.subm.Code }
func (p priorSubmission) Language() string { return p.subm.Language }
func (p priorSubmission) Slug() string     { return p.subm.Slug }
func (p priorSubmission) Subm() *Submission {
	subm := p.subm
	return &subm
}

type noPriorSubmission struct{}

func (noPriorSubmission) Exists() bool      { return false }
func (noPriorSubmission) Code() string      { return "" }
func (noPriorSubmission) Language() string  { return "" }
func (noPriorSubmission) Slug() string      { return "" }
func (noPriorSubmission) Subm() *Submission { return nil }

// NoPriorSubmission is the singleton "there is no previous submission"
// value. Comparing any attempt against it never yields a duplicate.
var NoPriorSubmission Prior = noPriorSubmission{}
