package enums

import "fmt"

// SubmissionStatus tracks the order submission state machine of a checkout
// session.
type SubmissionStatus string

const (
	SubmissionStatusIdle       SubmissionStatus = "idle"
	SubmissionStatusSubmitting SubmissionStatus = "submitting"
	SubmissionStatusSucceeded  SubmissionStatus = "succeeded"
	SubmissionStatusFailed     SubmissionStatus = "failed"
)

var validSubmissionStatuses = []SubmissionStatus{
	SubmissionStatusIdle,
	SubmissionStatusSubmitting,
	SubmissionStatusSucceeded,
	SubmissionStatusFailed,
}

// String implements fmt.Stringer.
func (s SubmissionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SubmissionStatus.
func (s SubmissionStatus) IsValid() bool {
	for _, candidate := range validSubmissionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanBegin reports whether a new submission attempt may start from this state.
// A failed attempt may be retried; a submission in flight or already succeeded
// may not be re-entered.
func (s SubmissionStatus) CanBegin() bool {
	return s == SubmissionStatusIdle || s == SubmissionStatusFailed
}

// ParseSubmissionStatus converts raw input into a SubmissionStatus.
func ParseSubmissionStatus(value string) (SubmissionStatus, error) {
	for _, candidate := range validSubmissionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid submission status %q", value)
}
