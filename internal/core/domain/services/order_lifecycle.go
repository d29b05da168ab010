package services

import (
	"context"
	"errors"

	loopfsm "github.com/looplab/fsm"

	"laborders/internal/core/domain/model/order"
)

// ErrOrderCannotBeAdvanced is returned when advancing an order that is already
// in the terminal lifecycle state. The message mirrors what API clients see.
var ErrOrderCannotBeAdvanced = errors.New("order not be updated")

// eventAdvance is the single event of the lifecycle machine: one step forward.
const eventAdvance = "advance"

// events describes the lifecycle as looplab/fsm event descriptors, derived
// from the fixed state sequence. Each state except the terminal one gets an
// "advance" transition to exactly its successor, so the machine cannot skip
// or move backward by construction.
var events = buildEvents()

func buildEvents() []loopfsm.EventDesc {
	sequence := order.StateSequence()
	out := make([]loopfsm.EventDesc, 0, len(sequence)-1)
	for i := 0; i < len(sequence)-1; i++ {
		out = append(out, loopfsm.EventDesc{
			Name: eventAdvance,
			Src:  []string{string(sequence[i])},
			Dst:  string(sequence[i+1]),
		})
	}
	return out
}

// OrderLifecycle is the domain service that owns the order state machine.
// It is the single component allowed to move an order through its lifecycle;
// everything else treats state as read-only.
//
// A short-lived FSM instance is created per call, initialized with the
// order's current state. This is necessary because looplab/fsm is stateful
// (it tracks the current state internally).
type OrderLifecycle struct{}

// NewOrderLifecycle creates a new OrderLifecycle instance.
func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// Next computes the state that follows current in the lifecycle sequence.
// Returns ErrOrderCannotBeAdvanced when current is the terminal state.
func (OrderLifecycle) Next(ctx context.Context, current order.State) (order.State, error) {
	if err := current.Validate(); err != nil {
		return "", err
	}

	machine := loopfsm.NewFSM(string(current), events, nil)

	if err := machine.Event(ctx, eventAdvance); err != nil {
		var invalidEvent loopfsm.InvalidEventError
		if errors.As(err, &invalidEvent) {
			return "", ErrOrderCannotBeAdvanced
		}
		return "", err
	}

	return order.State(machine.Current()), nil
}

// Advance moves the order exactly one step forward through its lifecycle.
// On failure the order is left unchanged: a terminal order yields
// ErrOrderCannotBeAdvanced and no mutation.
func (l OrderLifecycle) Advance(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	next, err := l.Next(ctx, aggregate.State())
	if err != nil {
		return err
	}

	return aggregate.AdvanceState(next)
}
