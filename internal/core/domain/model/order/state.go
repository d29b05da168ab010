package order

import (
	"fmt"

	"laborders/internal/pkg/errs"
)

// State represents the lifecycle stage of an order.
// The lifecycle is a strict linear sequence with no branches and no cycles:
//
//	CREATED ──> ANALYSIS ──> COMPLETED
//
// Orders only move forward through the sequence, one step at a time.
// COMPLETED is the terminal state.
type State string

const (
	// StateCreated is the initial state of every new order.
	StateCreated State = "CREATED"

	// StateAnalysis indicates the lab is processing the order's services.
	StateAnalysis State = "ANALYSIS"

	// StateCompleted is the terminal state. No further transitions are allowed.
	StateCompleted State = "COMPLETED"
)

// stateSequence is the fixed lifecycle order. Position in this slice defines
// which transitions are legal: an order may only move to the next entry.
var stateSequence = []State{StateCreated, StateAnalysis, StateCompleted}

// StateSequence returns the lifecycle states in transition order.
// The returned slice is a copy and safe to modify.
func StateSequence() []State {
	seq := make([]State, len(stateSequence))
	copy(seq, stateSequence)
	return seq
}

// StateFromString parses a state from its string representation.
// Returns an error if the string is not a valid state name.
func StateFromString(s string) (State, error) {
	state := State(s)
	if err := state.Validate(); err != nil {
		return "", err
	}
	return state, nil
}

// Validate checks that the State is one of the defined lifecycle stages.
func (s State) Validate() error {
	for _, valid := range stateSequence {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid state", string(s)))
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether the state is the last entry of the lifecycle.
// Terminal orders cannot be advanced.
func (s State) IsTerminal() bool {
	return s == stateSequence[len(stateSequence)-1]
}

// position returns the state's index in the lifecycle sequence, or -1 for
// an invalid state.
func (s State) position() int {
	for i, valid := range stateSequence {
		if s == valid {
			return i
		}
	}
	return -1
}
