package checkout

import "fmt"

// Step is one of the three sequential checkout phases.
type Step int

const (
	StepShipping Step = 1
	StepPayment  Step = 2
	StepReview   Step = 3
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// IsValid reports whether the value is a known Step.
func (s Step) IsValid() bool {
	return s >= StepShipping && s <= StepReview
}

// Next returns the following step, clamped at review.
func (s Step) Next() Step {
	if s >= StepReview {
		return StepReview
	}
	return s + 1
}

// Prev returns the preceding step, clamped at shipping.
func (s Step) Prev() Step {
	if s <= StepShipping {
		return StepShipping
	}
	return s - 1
}
