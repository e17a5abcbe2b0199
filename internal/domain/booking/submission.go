package booking

import "github.com/lostxrotimi/service-studio/internal/common/domain"

// SubmissionState is the state of one booking form submission.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSuccess    SubmissionState = "success"
	SubmissionError      SubmissionState = "error"
)

// validSubmissionTransitions defines the submission state machine.
var validSubmissionTransitions = map[SubmissionState][]SubmissionState{
	SubmissionIdle:       {SubmissionSubmitting},
	SubmissionSubmitting: {SubmissionSuccess, SubmissionError},
	SubmissionSuccess:    {SubmissionIdle},
	SubmissionError:      {SubmissionIdle},
}

// CanTransitionTo returns true if a transition from this state to the target is allowed.
func (s SubmissionState) CanTransitionTo(target SubmissionState) bool {
	for _, t := range validSubmissionTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Submission tracks a booking form through idle → submitting → success|error.
// Re-arming after success clears the form; re-arming after an error keeps it
// so the client can correct and resubmit.
type Submission struct {
	state   SubmissionState
	form    Form
	lastErr error
}

// NewSubmission returns an idle submission with an empty form.
func NewSubmission() *Submission {
	return &Submission{state: SubmissionIdle}
}

// State returns the current state.
func (s *Submission) State() SubmissionState { return s.state }

// Form returns the form buffer.
func (s *Submission) Form() Form { return s.form }

// Err returns the error that moved the submission into the error state.
func (s *Submission) Err() error { return s.lastErr }

// SetForm replaces the form buffer. Only allowed while idle.
func (s *Submission) SetForm(form Form) error {
	if s.state != SubmissionIdle {
		return domain.NewInvalidStateError(string(s.state), "editing")
	}
	s.form = form
	return nil
}

// Begin moves idle → submitting.
func (s *Submission) Begin() error {
	return s.transition(SubmissionSubmitting)
}

// Succeed moves submitting → success.
func (s *Submission) Succeed() error {
	return s.transition(SubmissionSuccess)
}

// Fail moves submitting → error and records cause.
func (s *Submission) Fail(cause error) error {
	if err := s.transition(SubmissionError); err != nil {
		return err
	}
	s.lastErr = cause
	return nil
}

// Reset re-arms the submission.
func (s *Submission) Reset() error {
	prev := s.state
	if err := s.transition(SubmissionIdle); err != nil {
		return err
	}
	if prev == SubmissionSuccess {
		s.form = Form{}
	}
	s.lastErr = nil
	return nil
}

func (s *Submission) transition(target SubmissionState) error {
	if !s.state.CanTransitionTo(target) {
		return domain.NewInvalidStateError(string(s.state), string(target))
	}
	s.state = target
	return nil
}
